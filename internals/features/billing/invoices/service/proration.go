// file: internals/features/billing/invoices/service/proration.go
package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Pembagi tarif harian. Konstanta kebijakan, bukan hasil hitung kalender.
	StandardDaysPerMonth = 26

	// Baris SPP dibulatkan KE ATAS ke kelipatan ini (jangan pernah ke bawah).
	TuitionRoundingIDR = 1000
)

type ProrationInput struct {
	BaseFeeIDR int

	JoinedAt time.Time
	EndedAt  *time.Time // nil = masih terdaftar

	MonthStart time.Time
	MonthEnd   time.Time

	IsTrial              bool
	TrialDiscountPercent int // 0–100, dari fee schedule
}

type TuitionLine struct {
	AmountIDR int
	StudyDays int
	FullMonth bool
	Rationale string
}

// HasOverlap: siswa yang sama sekali tidak beririsan dengan periode
// dikecualikan dari run SEBELUM prorata (bukan hasil 0 hari).
func HasOverlap(joinedAt time.Time, endedAt *time.Time, monthStart, monthEnd time.Time) bool {
	if dateOnly(joinedAt).After(dateOnly(monthEnd)) {
		return false
	}
	if endedAt != nil && dateOnly(*endedAt).Before(dateOnly(monthStart)) {
		return false
	}
	return true
}

// ProrateTuition: hitung baris SPP dari jendela pendaftaran ∩ periode.
// ok=false → siswa tidak ditagih periode ini (0 hari efektif; skip normal).
func ProrateTuition(in ProrationInput) (TuitionLine, bool) {
	overlapStart := dateOnly(in.JoinedAt)
	if overlapStart.Before(dateOnly(in.MonthStart)) {
		overlapStart = dateOnly(in.MonthStart)
	}
	overlapEnd := dateOnly(in.MonthEnd)
	if in.EndedAt != nil && dateOnly(*in.EndedAt).Before(overlapEnd) {
		overlapEnd = dateOnly(*in.EndedAt)
	}

	studyDays := CountBillableDays(overlapStart, overlapEnd)
	if studyDays <= 0 {
		return TuitionLine{}, false
	}

	baseFee := decimal.NewFromInt(int64(in.BaseFeeIDR))
	perDay := baseFee.Div(decimal.NewFromInt(StandardDaysPerMonth))

	// Trial: selalu prorata harian + diskon, tidak pernah paket penuh.
	if in.IsTrial {
		factor := decimal.NewFromInt(int64(100 - in.TrialDiscountPercent)).
			Div(decimal.NewFromInt(100))
		raw := perDay.Mul(decimal.NewFromInt(int64(studyDays))).Mul(factor)
		return TuitionLine{
			AmountIDR: roundUpToThousand(raw),
			StudyDays: studyDays,
			Rationale: fmt.Sprintf("Trial %d hari efektif, diskon %d%%", studyDays, in.TrialDiscountPercent),
		}, true
	}

	fullMonth := !dateOnly(in.JoinedAt).After(dateOnly(in.MonthStart)) &&
		(in.EndedAt == nil || !dateOnly(*in.EndedAt).Before(dateOnly(in.MonthEnd)))
	if fullMonth {
		// Paket penuh: tarif dasar apa adanya, tanpa aritmetika 26 hari.
		return TuitionLine{
			AmountIDR: in.BaseFeeIDR,
			StudyDays: studyDays,
			FullMonth: true,
			Rationale: "Paket penuh bulan berjalan",
		}, true
	}

	raw := perDay.Mul(decimal.NewFromInt(int64(studyDays)))
	return TuitionLine{
		AmountIDR: roundUpToThousand(raw),
		StudyDays: studyDays,
		Rationale: fmt.Sprintf("Prorata %d dari %d hari standar", studyDays, StandardDaysPerMonth),
	}, true
}

// roundUpToThousand: ceil(x/1000)*1000 — melindungi sekolah dari
// kurang-tagih akibat pembulatan.
func roundUpToThousand(x decimal.Decimal) int {
	step := decimal.NewFromInt(TuitionRoundingIDR)
	return int(x.Div(step).Ceil().Mul(step).IntPart())
}
