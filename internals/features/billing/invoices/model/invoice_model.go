// file: internals/features/billing/invoices/model/invoice_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status invoice
// =========================================================

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// =========================================================
// JSONB VALUE TYPES
// =========================================================

// Satu baris item tagihan. Baris SPP selalu paling depan,
// disusul biaya tambahan flat dari fee schedule.
type InvoiceItem struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	AmountIDR int    `json:"amount_idr"`
	Rationale string `json:"rationale,omitempty"`
}

// =========================================================
// MODEL invoices
// =========================================================

type Invoice struct {
	// PK
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// FK → students(student_id); unik bersama periode (idempotency backstop)
	InvoiceStudentID uuid.UUID `gorm:"column:invoice_student_id;type:uuid;not null;index;uniqueIndex:uniq_invoice_student_period,priority:1" json:"invoice_student_id"`
	InvoiceYear      int       `gorm:"column:invoice_year;type:smallint;not null;uniqueIndex:uniq_invoice_student_period,priority:2" json:"invoice_year"`
	InvoiceMonth     int       `gorm:"column:invoice_month;type:smallint;not null;uniqueIndex:uniq_invoice_student_period,priority:3" json:"invoice_month"`

	// Snapshot audit saat generate
	InvoiceLevelCode string `gorm:"column:invoice_level_code;type:varchar(20);not null" json:"invoice_level_code"`
	InvoiceIsTrial   bool   `gorm:"column:invoice_is_trial;not null;default:false" json:"invoice_is_trial"`
	InvoiceStudyDays int    `gorm:"column:invoice_study_days;not null;default:0" json:"invoice_study_days"`

	// Item & total
	InvoiceItems    datatypes.JSONSlice[InvoiceItem] `gorm:"column:invoice_items;type:jsonb;not null;default:'[]'" json:"invoice_items"`
	InvoiceTotalIDR int                              `gorm:"column:invoice_total_idr;not null;check:invoice_total_idr>=0;index:ix_invoices_total" json:"invoice_total_idr"`

	// Status & pembayaran
	InvoiceStatus InvoiceStatus `gorm:"column:invoice_status;type:varchar(20);not null;default:'pending';index:ix_invoices_status" json:"invoice_status"`
	InvoicePaidAt *time.Time    `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`

	// Timestamps (eksplisit)
	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now();index:ix_invoices_created_at" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }

func (m *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}

// MarkPaid: transisi pending → paid. Invoice yang sudah paid tidak
// di-stamp ulang; return false supaya caller bisa membedakan no-op.
func (m *Invoice) MarkPaid(at time.Time) bool {
	if m.InvoiceStatus == InvoiceStatusPaid {
		return false
	}
	m.InvoiceStatus = InvoiceStatusPaid
	m.InvoicePaidAt = &at
	return true
}

// =========================================================
// PERIOD LABEL
// =========================================================

var monthNames = [13]string{"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PeriodLabel: "Juli 2025" — dipakai di nama item SPP dan pesan notifikasi.
func PeriodLabel(month, year int) string {
	if month >= 1 && month <= 12 {
		return fmt.Sprintf("%s %d", monthNames[month], year)
	}
	return fmt.Sprintf("%02d-%d", month, year)
}
