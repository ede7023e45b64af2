// file: internals/features/billing/invoices/service/calendar_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountBillableDays_FullMonthSkipsSundays(t *testing.T) {
	// Juli 2025: 31 hari, Minggu jatuh di 6, 13, 20, 27.
	got := CountBillableDays(date(2025, time.July, 1), date(2025, time.July, 31))
	assert.Equal(t, 27, got)
}

func TestCountBillableDays_LeapFebruary(t *testing.T) {
	// Februari 2024: 29 hari, 4 hari Minggu.
	got := CountBillableDays(date(2024, time.February, 1), date(2024, time.February, 29))
	assert.Equal(t, 25, got)
}

func TestCountBillableDays_SingleDay(t *testing.T) {
	// Senin dihitung, Minggu tidak.
	assert.Equal(t, 1, CountBillableDays(date(2025, time.July, 7), date(2025, time.July, 7)))
	assert.Equal(t, 0, CountBillableDays(date(2025, time.July, 6), date(2025, time.July, 6)))
}

func TestCountBillableDays_StartAfterEnd(t *testing.T) {
	got := CountBillableDays(date(2025, time.July, 10), date(2025, time.July, 5))
	assert.Equal(t, 0, got)
}

func TestCountBillableDays_IgnoresClock(t *testing.T) {
	// Komponen jam tidak boleh menggeser hitungan hari.
	start := time.Date(2025, time.July, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 31, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 27, CountBillableDays(start, end))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(7, 2025)
	assert.Equal(t, date(2025, time.July, 1), first)
	assert.Equal(t, date(2025, time.July, 31), last)

	// Tahun kabisat
	_, lastFeb := MonthBounds(2, 2024)
	assert.Equal(t, date(2024, time.February, 29), lastFeb)

	// Desember → akhir tahun
	_, lastDec := MonthBounds(12, 2025)
	assert.Equal(t, date(2025, time.December, 31), lastDec)
}
