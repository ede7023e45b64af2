// file: internals/features/billing/fees/controller/fee_schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/billing/fees/dto"
	feemodel "sekolahku_backend/internals/features/billing/fees/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type FeeScheduleHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// -----------------------------------------
// Create (POST /fee-schedules)
// Satu schedule per periode (bulan, tahun) — duplikat ditolak 409.
// -----------------------------------------
func (h *FeeScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeScheduleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var count int64
	if err := h.DB.WithContext(c.UserContext()).Model(&feemodel.FeeSchedule{}).
		Where("fee_schedule_month = ? AND fee_schedule_year = ?", in.FeeScheduleMonth, in.FeeScheduleYear).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "fee schedule untuk periode ini sudah ada")
	}

	m := dto.FeeScheduleCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee schedule created", dto.ToFeeScheduleResponse(m))
}

// -----------------------------------------
// Update (PATCH /fee-schedules/:id)
// Invoice yang sudah terbit menyimpan snapshot sendiri, jadi edit di sini
// tidak pernah mengubah tagihan lama.
// -----------------------------------------
func (h *FeeScheduleHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeScheduleUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var m feemodel.FeeSchedule
	if err := h.DB.WithContext(c.UserContext()).First(&m, "fee_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee_schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyFeeScheduleUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee schedule updated", dto.ToFeeScheduleResponse(m))
}

// -----------------------------------------
// Get by period (GET /fee-schedules/period?month=&year=)
// -----------------------------------------
func (h *FeeScheduleHandler) GetByPeriod(c *fiber.Ctx) error {
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if month <= 0 || year <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month dan year wajib diisi")
	}

	var m feemodel.FeeSchedule
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "fee_schedule_month = ? AND fee_schedule_year = ?", month, year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee_schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeScheduleResponse(m))
}

// -----------------------------------------
// List (GET /fee-schedules?year=)
// -----------------------------------------
func (h *FeeScheduleHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&feemodel.FeeSchedule{}).
		Where("fee_schedule_deleted_at IS NULL")
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("fee_schedule_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []feemodel.FeeSchedule
	if err := q.
		Order("fee_schedule_year DESC, fee_schedule_month DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToFeeScheduleResponses(list), helper.BuildMeta(total, p))
}
