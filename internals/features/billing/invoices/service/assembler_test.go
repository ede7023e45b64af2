// file: internals/features/billing/invoices/service/assembler_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feemodel "sekolahku_backend/internals/features/billing/fees/model"
	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
)

func TestAssembleInvoice_TotalIsExactSum(t *testing.T) {
	studentID := uuid.New()
	tuition := TuitionLine{AmountIDR: 1_231_000, StudyDays: 16, Rationale: "Prorata 16 dari 26 hari standar"}
	extras := []feemodel.ExtraFee{
		{Key: "buku", Name: "Paket Buku", AmountIDR: 150_000},
		{Key: "kegiatan", Name: "Dana Kegiatan", AmountIDR: 75_500}, // sengaja bukan kelipatan 1000
	}

	inv := AssembleInvoice(studentID, 7, 2025, "sd", false, tuition, extras)

	require.Len(t, inv.InvoiceItems, 3)
	// Baris SPP selalu paling depan.
	assert.Equal(t, "spp", inv.InvoiceItems[0].Key)
	assert.Equal(t, "SPP Juli 2025", inv.InvoiceItems[0].Name)
	assert.Equal(t, tuition.Rationale, inv.InvoiceItems[0].Rationale)

	// Biaya tambahan nominal penuh, tidak ikut diprorata/dibulatkan.
	assert.Equal(t, 150_000, inv.InvoiceItems[1].AmountIDR)
	assert.Equal(t, 75_500, inv.InvoiceItems[2].AmountIDR)

	// Total = jumlah persis, tanpa pembulatan di level total.
	assert.Equal(t, 1_231_000+150_000+75_500, inv.InvoiceTotalIDR)
	assert.Equal(t, invmodel.InvoiceStatusPending, inv.InvoiceStatus)
}

func TestAssembleInvoice_SnapshotFields(t *testing.T) {
	studentID := uuid.New()
	tuition := TuitionLine{AmountIDR: 193_000, StudyDays: 5, Rationale: "Trial 5 hari efektif, diskon 50%"}

	inv := AssembleInvoice(studentID, 7, 2025, "smp", true, tuition, nil)

	assert.Equal(t, studentID, inv.InvoiceStudentID)
	assert.Equal(t, 7, inv.InvoiceMonth)
	assert.Equal(t, 2025, inv.InvoiceYear)
	assert.Equal(t, "smp", inv.InvoiceLevelCode)
	assert.True(t, inv.InvoiceIsTrial)
	assert.Equal(t, 5, inv.InvoiceStudyDays)
	require.Len(t, inv.InvoiceItems, 1)
	assert.Equal(t, 193_000, inv.InvoiceTotalIDR)
}
