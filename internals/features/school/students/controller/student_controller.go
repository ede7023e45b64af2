// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	stumodel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type StudentHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

func buildOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"updated_at": "student_updated_at",
		"name":       "student_name",
		"joined_at":  "student_joined_at",
		"level":      "student_level_code",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var m stumodel.Student
	if err := h.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// -----------------------------------------
// List (GET /students)
// Query filters (opsional): status, level, is_trial, class_id, q (nama)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&stumodel.Student{}).
		Where("student_deleted_at IS NULL")

	if v := c.Query("status"); v != "" {
		q = q.Where("student_status = ?", v)
	}
	if v := c.Query("level"); v != "" {
		q = q.Where("LOWER(student_level_code) = ?", strings.ToLower(v))
	}
	if v := c.Query("is_trial"); v != "" {
		q = q.Where("student_is_trial = ?", strings.EqualFold(v, "true"))
	}
	if v := c.Query("class_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_class_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("student_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []stumodel.Student
	if err := q.
		Preload("StudentGuardians").
		Order(buildOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m stumodel.Student
	if err := h.DB.WithContext(c.UserContext()).
		Preload("StudentGuardians").
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToStudentResponse(m))
}
