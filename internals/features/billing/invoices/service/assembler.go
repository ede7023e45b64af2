// file: internals/features/billing/invoices/service/assembler.go
package service

import (
	"github.com/google/uuid"

	feemodel "sekolahku_backend/internals/features/billing/fees/model"
	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
)

// AssembleInvoice: rakit invoice ber-item dari baris SPP + biaya tambahan.
// Biaya tambahan dikenakan nominal penuh (tidak diprorata). Total = jumlah
// persis semua item; baris SPP sudah dibulatkan, tidak ada pembulatan lagi
// di level total.
func AssembleInvoice(
	studentID uuid.UUID,
	month, year int,
	levelCode string,
	isTrial bool,
	tuition TuitionLine,
	extras []feemodel.ExtraFee,
) invmodel.Invoice {
	items := make([]invmodel.InvoiceItem, 0, 1+len(extras))
	items = append(items, invmodel.InvoiceItem{
		Key:       "spp",
		Name:      "SPP " + invmodel.PeriodLabel(month, year),
		AmountIDR: tuition.AmountIDR,
		Rationale: tuition.Rationale,
	})
	for _, ex := range extras {
		items = append(items, invmodel.InvoiceItem{
			Key:       ex.Key,
			Name:      ex.Name,
			AmountIDR: ex.AmountIDR,
		})
	}

	total := 0
	for _, it := range items {
		total += it.AmountIDR
	}

	return invmodel.Invoice{
		InvoiceStudentID: studentID,
		InvoiceMonth:     month,
		InvoiceYear:      year,
		InvoiceLevelCode: levelCode,
		InvoiceIsTrial:   isTrial,
		InvoiceStudyDays: tuition.StudyDays,
		InvoiceItems:     items,
		InvoiceTotalIDR:  total,
		InvoiceStatus:    invmodel.InvoiceStatusPending,
	}
}
