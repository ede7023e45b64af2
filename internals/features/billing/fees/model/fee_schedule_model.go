// file: internals/features/billing/fees/model/fee_schedule_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// JSONB VALUE TYPES
// =========================================================

// Tarif dasar per jenjang. Urutan array dipertahankan (jsonb array).
type LevelAmount struct {
	LevelCode string `json:"level_code"`
	AmountIDR int    `json:"amount_idr"`
}

// Biaya tambahan flat (tidak diprorata).
type ExtraFee struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	AmountIDR int    `json:"amount_idr"`
}

// =========================================================
// MODEL fee_schedules — satu baris per periode (bulan, tahun)
// =========================================================

type FeeSchedule struct {
	// PK
	FeeScheduleID uuid.UUID `gorm:"column:fee_schedule_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_schedule_id"`

	// Periode (unik bersama)
	FeeScheduleYear  int `gorm:"column:fee_schedule_year;type:smallint;not null;uniqueIndex:uniq_fee_schedule_period,priority:1" json:"fee_schedule_year"`
	FeeScheduleMonth int `gorm:"column:fee_schedule_month;type:smallint;not null;uniqueIndex:uniq_fee_schedule_period,priority:2" json:"fee_schedule_month"`

	// Tarif dasar per jenjang + biaya tambahan flat
	FeeScheduleLevelAmounts datatypes.JSONSlice[LevelAmount] `gorm:"column:fee_schedule_level_amounts;type:jsonb;not null;default:'[]'" json:"fee_schedule_level_amounts"`
	FeeScheduleExtraFees    datatypes.JSONSlice[ExtraFee]    `gorm:"column:fee_schedule_extra_fees;type:jsonb;not null;default:'[]'" json:"fee_schedule_extra_fees"`

	// Diskon trial 0–100 (%)
	FeeScheduleTrialDiscountPercent int `gorm:"column:fee_schedule_trial_discount_percent;not null;default:0;check:fee_schedule_trial_discount_percent BETWEEN 0 AND 100" json:"fee_schedule_trial_discount_percent"`

	// Timestamps (eksplisit)
	FeeScheduleCreatedAt time.Time      `gorm:"column:fee_schedule_created_at;not null;default:now()" json:"fee_schedule_created_at"`
	FeeScheduleUpdatedAt time.Time      `gorm:"column:fee_schedule_updated_at;not null;default:now()" json:"fee_schedule_updated_at"`
	FeeScheduleDeletedAt gorm.DeletedAt `gorm:"column:fee_schedule_deleted_at;index" json:"-"`

	// Catatan: invoice menyimpan snapshot nominalnya sendiri saat generate,
	// jadi edit schedule setelahnya tidak mengubah invoice yang sudah terbit.
}

func (FeeSchedule) TableName() string { return "fee_schedules" }

func (m *FeeSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeScheduleCreatedAt.IsZero() {
		m.FeeScheduleCreatedAt = now
	}
	m.FeeScheduleUpdatedAt = now
	return nil
}

func (m *FeeSchedule) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeScheduleUpdatedAt = time.Now()
	return nil
}

// LevelFee: tarif dasar untuk kode jenjang (case-insensitive).
// ok=false kalau jenjang tidak dikonfigurasi di periode ini.
func (m FeeSchedule) LevelFee(levelCode string) (int, bool) {
	lc := strings.ToLower(strings.TrimSpace(levelCode))
	for _, la := range m.FeeScheduleLevelAmounts {
		if strings.ToLower(strings.TrimSpace(la.LevelCode)) == lc {
			return la.AmountIDR, true
		}
	}
	return 0, false
}
