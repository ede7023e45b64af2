// file: internals/features/billing/invoices/service/proration_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func julyBounds() (time.Time, time.Time) {
	return MonthBounds(7, 2025)
}

func TestProrateTuition_FullMonthExactBaseFee(t *testing.T) {
	monthStart, monthEnd := julyBounds()

	line, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR: 2_000_000,
		JoinedAt:   date(2025, time.January, 10),
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
	})

	require.True(t, ok)
	// Paket penuh = tarif dasar apa adanya, bukan perDay*26 yang bisa
	// berbeda karena pembulatan.
	assert.Equal(t, 2_000_000, line.AmountIDR)
	assert.True(t, line.FullMonth)
	assert.Equal(t, 27, line.StudyDays) // Juli 2025 minus 4 Minggu
}

func TestProrateTuition_MidMonthJoinerRoundsUp(t *testing.T) {
	monthStart, monthEnd := julyBounds()

	// Gabung 13 Juli (Minggu) → hari efektif 13–31 Juli = 16.
	line, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR: 2_000_000,
		JoinedAt:   date(2025, time.July, 13),
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
	})

	require.True(t, ok)
	assert.Equal(t, 16, line.StudyDays)
	// 2.000.000/26*16 = 1.230.769,23… → naik ke 1.231.000
	assert.Equal(t, 1_231_000, line.AmountIDR)
	assert.False(t, line.FullMonth)
	assert.Contains(t, line.Rationale, "16")
}

func TestProrateTuition_TrialDiscount(t *testing.T) {
	monthStart, monthEnd := julyBounds()

	// Gabung 26 Juli (Sabtu) → 26, 28, 29, 30, 31 = 5 hari efektif.
	line, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR:           2_000_000,
		JoinedAt:             date(2025, time.July, 26),
		MonthStart:           monthStart,
		MonthEnd:             monthEnd,
		IsTrial:              true,
		TrialDiscountPercent: 50,
	})

	require.True(t, ok)
	assert.Equal(t, 5, line.StudyDays)
	// 2.000.000/26*5*0,5 = 192.307,69… → naik ke 193.000
	assert.Equal(t, 193_000, line.AmountIDR)
	assert.Contains(t, line.Rationale, "Trial")
}

func TestProrateTuition_TrialNeverFullMonth(t *testing.T) {
	monthStart, monthEnd := julyBounds()

	// Siswa trial hadir sebulan penuh pun tetap prorata harian + diskon.
	line, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR:           2_600_000, // kelipatan 26 supaya perDay bulat
		JoinedAt:             date(2025, time.June, 1),
		MonthStart:           monthStart,
		MonthEnd:             monthEnd,
		IsTrial:              true,
		TrialDiscountPercent: 50,
	})

	require.True(t, ok)
	assert.False(t, line.FullMonth)
	// 100.000/hari * 27 hari * 0,5 = 1.350.000 (sudah kelipatan 1000)
	assert.Equal(t, 1_350_000, line.AmountIDR)
}

func TestProrateTuition_EndedMidMonth(t *testing.T) {
	monthStart, monthEnd := julyBounds()
	ended := date(2025, time.July, 12) // Sabtu

	line, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR: 2_000_000,
		JoinedAt:   date(2025, time.January, 1),
		EndedAt:    &ended,
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
	})

	require.True(t, ok)
	// 1–12 Juli minus Minggu (6) = 11 hari.
	assert.Equal(t, 11, line.StudyDays)
	assert.False(t, line.FullMonth)
	// 2.000.000/26*11 = 846.153,84… → 847.000
	assert.Equal(t, 847_000, line.AmountIDR)
}

func TestProrateTuition_ZeroEffectiveDays(t *testing.T) {
	monthStart, monthEnd := julyBounds()
	// Terdaftar hanya di hari Minggu (6 Juli).
	ended := date(2025, time.July, 6)

	_, ok := ProrateTuition(ProrationInput{
		BaseFeeIDR: 2_000_000,
		JoinedAt:   date(2025, time.July, 6),
		EndedAt:    &ended,
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
	})
	assert.False(t, ok)
}

func TestHasOverlap(t *testing.T) {
	monthStart, monthEnd := julyBounds()

	ended := date(2025, time.June, 30)
	endedOnStart := date(2025, time.July, 1)

	// Gabung setelah periode berakhir → tidak beririsan.
	assert.False(t, HasOverlap(date(2025, time.August, 1), nil, monthStart, monthEnd))
	// Keluar sebelum periode mulai → tidak beririsan.
	assert.False(t, HasOverlap(date(2025, time.January, 1), &ended, monthStart, monthEnd))
	// Irisan satu hari di batas tetap dihitung beririsan.
	assert.True(t, HasOverlap(date(2025, time.July, 31), nil, monthStart, monthEnd))
	assert.True(t, HasOverlap(date(2025, time.January, 1), &endedOnStart, monthStart, monthEnd))
	// Kasus normal.
	assert.True(t, HasOverlap(date(2025, time.July, 10), nil, monthStart, monthEnd))
}

func TestRoundUpToThousand(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1000},
		{"999.99", 1000},
		{"1000", 1000},
		{"1000.01", 2000},
		{"1230769.23", 1231000},
		{"192307.69", 193000},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, roundUpToThousand(d), "input %s", tc.in)
	}
}
