// file: internals/features/billing/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	service "sekolahku_backend/internals/features/billing/invoices/service"
)

////////////////////////////////////////////////////////////////////////////////
// GENERATE — DTO
////////////////////////////////////////////////////////////////////////////////

type GenerateInvoicesRequest struct {
	Month int `json:"month" validate:"required"`
	Year  int `json:"year" validate:"required,min=2000"`
}

type GenerateInvoicesResponse struct {
	Month        int                      `json:"month"`
	Year         int                      `json:"year"`
	CreatedCount int                      `json:"created_count"`
	Invoices     []InvoiceResponse        `json:"invoices"`
	Outcomes     []service.StudentOutcome `json:"outcomes"`
}

func ToGenerateInvoicesResponse(sum service.RunSummary) GenerateInvoicesResponse {
	return GenerateInvoicesResponse{
		Month:        sum.Month,
		Year:         sum.Year,
		CreatedCount: sum.CreatedCount,
		Invoices:     ToInvoiceResponses(sum.Invoices),
		Outcomes:     sum.Outcomes,
	}
}

////////////////////////////////////////////////////////////////////////////////
// INVOICE — DTO
////////////////////////////////////////////////////////////////////////////////

type InvoiceResponse struct {
	InvoiceID        uuid.UUID              `json:"invoice_id"`
	InvoiceStudentID uuid.UUID              `json:"invoice_student_id"`
	InvoiceMonth     int                    `json:"invoice_month"`
	InvoiceYear      int                    `json:"invoice_year"`
	InvoicePeriod    string                 `json:"invoice_period"` // "Juli 2025"
	InvoiceLevelCode string                 `json:"invoice_level_code"`
	InvoiceIsTrial   bool                   `json:"invoice_is_trial"`
	InvoiceStudyDays int                    `json:"invoice_study_days"`
	InvoiceItems     []invmodel.InvoiceItem `json:"invoice_items"`
	InvoiceTotalIDR  int                    `json:"invoice_total_idr"`
	InvoiceStatus    string                 `json:"invoice_status"` // pending|paid
	InvoicePaidAt    *time.Time             `json:"invoice_paid_at,omitempty"`
	InvoiceCreatedAt time.Time              `json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time              `json:"invoice_updated_at"`
	InvoiceDeletedAt *time.Time             `json:"invoice_deleted_at,omitempty"`
}

func ToInvoiceResponse(m invmodel.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        m.InvoiceID,
		InvoiceStudentID: m.InvoiceStudentID,
		InvoiceMonth:     m.InvoiceMonth,
		InvoiceYear:      m.InvoiceYear,
		InvoicePeriod:    invmodel.PeriodLabel(m.InvoiceMonth, m.InvoiceYear),
		InvoiceLevelCode: m.InvoiceLevelCode,
		InvoiceIsTrial:   m.InvoiceIsTrial,
		InvoiceStudyDays: m.InvoiceStudyDays,
		InvoiceItems:     m.InvoiceItems,
		InvoiceTotalIDR:  m.InvoiceTotalIDR,
		InvoiceStatus:    string(m.InvoiceStatus),
		InvoicePaidAt:    m.InvoicePaidAt,
		InvoiceCreatedAt: m.InvoiceCreatedAt,
		InvoiceUpdatedAt: m.InvoiceUpdatedAt,
		InvoiceDeletedAt: toPtrTimeFromDeletedAt(m.InvoiceDeletedAt),
	}
}

func ToInvoiceResponses(list []invmodel.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInvoiceResponse(v))
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// MARK PAID — DTO
////////////////////////////////////////////////////////////////////////////////

type InvoiceMarkPaidDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty"` // jika nil, backend isi now()
}

////////////////////////////////////////////////////////////////////////////////
// YEARLY SUMMARY — DTO
////////////////////////////////////////////////////////////////////////////////

type MonthlyAggregate struct {
	Month           int   `json:"month"`
	PaidCount       int   `json:"paid_count"`
	PaidTotalIDR    int64 `json:"paid_total_idr"`
	PendingCount    int   `json:"pending_count"`
	PendingTotalIDR int64 `json:"pending_total_idr"`
}

type YearlySummaryResponse struct {
	Year   int                `json:"year"`
	Months []MonthlyAggregate `json:"months"`
}

////////////////////////////////////////////////////////////////////////////////
// SMALL UTILS
////////////////////////////////////////////////////////////////////////////////

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
