// file: internals/features/billing/invoices/model/invoice_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPaid_StampsOnce(t *testing.T) {
	inv := Invoice{InvoiceStatus: InvoiceStatusPending}

	first := time.Date(2025, time.July, 5, 10, 0, 0, 0, time.UTC)
	require.True(t, inv.MarkPaid(first))
	assert.Equal(t, InvoiceStatusPaid, inv.InvoiceStatus)
	require.NotNil(t, inv.InvoicePaidAt)
	assert.Equal(t, first, *inv.InvoicePaidAt)

	// Mark-paid kedua = no-op, timestamp asli tidak tertimpa.
	second := first.AddDate(0, 0, 3)
	assert.False(t, inv.MarkPaid(second))
	assert.Equal(t, first, *inv.InvoicePaidAt)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Juli 2025", PeriodLabel(7, 2025))
	assert.Equal(t, "Desember 2024", PeriodLabel(12, 2024))
	// Di luar 1–12 jatuh ke format numerik, bukan panic.
	assert.Equal(t, "13-2025", PeriodLabel(13, 2025))
	assert.Equal(t, "00-2025", PeriodLabel(0, 2025))
}
