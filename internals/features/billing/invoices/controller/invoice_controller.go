// file: internals/features/billing/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/billing/invoices/dto"
	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	service "sekolahku_backend/internals/features/billing/invoices/service"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type InvoiceHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

func buildOrderClause(p helper.Params) string {
	// whitelist sortable keys → kolom fisik
	allowed := map[string]string{
		"created_at": "invoice_created_at",
		"updated_at": "invoice_updated_at",
		"total":      "invoice_total_idr",
		"status":     "invoice_status",
		"paid_at":    "invoice_paid_at",
		"period":     "invoice_year, invoice_month",
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
// Generate (POST /invoices/generate)
// Body: {month, year} — jalankan billing run satu periode.
// -----------------------------------------
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoicesRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	gen := service.NewGenerator(service.NewGormStore(h.DB))
	sum, err := gen.Generate(c.UserContext(), in.Month, in.Year)
	if err != nil {
		if errors.Is(err, service.ErrFeeScheduleNotConfigured) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	msg := fmt.Sprintf("%d tagihan dibuat untuk %s", sum.CreatedCount, invmodel.PeriodLabel(in.Month, in.Year))
	return helper.JsonOK(c, msg, dto.ToGenerateInvoicesResponse(sum))
}

// -----------------------------------------
// List (GET /invoices)
// Query filters (opsional):
// - student_id, month, year, status (pending|paid)
// - paid: true|false
// - total_min, total_max (int)
// - date_from, date_to (filter created_at)
// - sort_by (created_at|updated_at|total|status|paid_at|period), order (asc|desc)
// - page, per_page
// -----------------------------------------
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	return h.list(c, p)
}

// Export (GET /invoices/export) — preset longgar, dukung per_page=all
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "asc", helper.ExportOpts)
	return h.list(c, p)
}

func (h *InvoiceHandler) list(c *fiber.Ctx, p helper.Params) error {
	q := h.DB.WithContext(c.UserContext()).Model(&invmodel.Invoice{}).
		Where("invoice_deleted_at IS NULL")

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_student_id = ?", id)
		}
	}
	if v := c.QueryInt("month"); v > 0 {
		q = q.Where("invoice_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("invoice_year = ?", v)
	}
	if v := c.Query("status"); v != "" {
		// pending|paid
		q = q.Where("invoice_status = ?", v)
	}
	// paid=true/false → terjemahkan ke paid_at NULL / NOT NULL
	if v := c.Query("paid"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("invoice_paid_at IS NOT NULL")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("invoice_paid_at IS NULL")
		}
	}

	// total range
	if v := c.QueryInt("total_min"); v > 0 {
		q = q.Where("invoice_total_idr >= ?", v)
	}
	if v := c.QueryInt("total_max"); v > 0 {
		q = q.Where("invoice_total_idr <= ?", v)
	}

	// date range (created_at)
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("invoice_created_at >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("invoice_created_at <= ?", t)
		}
	}

	// count
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// data
	var list []invmodel.Invoice
	if err := q.
		Order(buildOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ToInvoiceResponses(list)
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "", resp, meta)
}

// -----------------------------------------
// Detail (GET /invoices/:id)
// -----------------------------------------
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m invmodel.Invoice
	if err := h.DB.WithContext(c.UserContext()).First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToInvoiceResponse(m))
}

// -----------------------------------------
// Status: Mark Paid (POST /invoices/:id/mark-paid)
// Invoice yang sudah paid → no-op eksplisit ("already paid"), bukan error.
// -----------------------------------------
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	// body opsional ({paid_at} atau kosong)
	var in dto.InvoiceMarkPaidDTO
	_ = c.BodyParser(&in)

	var m invmodel.Invoice
	if err := h.DB.WithContext(c.UserContext()).First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	at := time.Now()
	if in.PaidAt != nil {
		at = *in.PaidAt
	}
	if !m.MarkPaid(at) {
		return helper.JsonOK(c, "already paid", dto.ToInvoiceResponse(m))
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "marked as paid", dto.ToInvoiceResponse(m))
}

// -----------------------------------------
// Yearly Summary (GET /invoices/yearly-summary?year=2025)
// Agregasi paid vs pending per bulan, satu query GROUP BY.
// -----------------------------------------
func (h *InvoiceHandler) YearlySummary(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "year is required")
	}

	type row struct {
		Month    int
		Status   string
		Count    int
		TotalIDR int64
	}
	var rows []row
	if err := h.DB.WithContext(c.UserContext()).Model(&invmodel.Invoice{}).
		Select("invoice_month AS month, invoice_status AS status, COUNT(*) AS count, COALESCE(SUM(invoice_total_idr),0) AS total_idr").
		Where("invoice_year = ? AND invoice_deleted_at IS NULL", year).
		Group("invoice_month, invoice_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	byMonth := map[int]*dto.MonthlyAggregate{}
	for _, r := range rows {
		agg, ok := byMonth[r.Month]
		if !ok {
			agg = &dto.MonthlyAggregate{Month: r.Month}
			byMonth[r.Month] = agg
		}
		switch invmodel.InvoiceStatus(r.Status) {
		case invmodel.InvoiceStatusPaid:
			agg.PaidCount = r.Count
			agg.PaidTotalIDR = r.TotalIDR
		case invmodel.InvoiceStatusPending:
			agg.PendingCount = r.Count
			agg.PendingTotalIDR = r.TotalIDR
		}
	}

	out := dto.YearlySummaryResponse{Year: year, Months: make([]dto.MonthlyAggregate, 0, len(byMonth))}
	for m := 1; m <= 12; m++ {
		if agg, ok := byMonth[m]; ok {
			out.Months = append(out.Months, *agg)
		}
	}
	return helper.JsonOK(c, "", out)
}
