// file: internals/features/billing/fees/dto/fee_schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feemodel "sekolahku_backend/internals/features/billing/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE SCHEDULES — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeScheduleCreateDTO struct {
	FeeScheduleMonth                int                     `json:"fee_schedule_month" validate:"required,min=1,max=12"`
	FeeScheduleYear                 int                     `json:"fee_schedule_year" validate:"required,min=2000"`
	FeeScheduleLevelAmounts         []feemodel.LevelAmount  `json:"fee_schedule_level_amounts" validate:"required,min=1,dive"`
	FeeScheduleExtraFees            []feemodel.ExtraFee     `json:"fee_schedule_extra_fees,omitempty" validate:"omitempty,dive"`
	FeeScheduleTrialDiscountPercent int                     `json:"fee_schedule_trial_discount_percent" validate:"min=0,max=100"`
}

// Update (partial) — periode tidak boleh diubah lewat update
type FeeScheduleUpdateDTO struct {
	FeeScheduleLevelAmounts         *[]feemodel.LevelAmount `json:"fee_schedule_level_amounts,omitempty"`
	FeeScheduleExtraFees            *[]feemodel.ExtraFee    `json:"fee_schedule_extra_fees,omitempty"`
	FeeScheduleTrialDiscountPercent *int                    `json:"fee_schedule_trial_discount_percent,omitempty" validate:"omitempty,min=0,max=100"`
}

type FeeScheduleResponse struct {
	FeeScheduleID                   uuid.UUID              `json:"fee_schedule_id"`
	FeeScheduleMonth                int                    `json:"fee_schedule_month"`
	FeeScheduleYear                 int                    `json:"fee_schedule_year"`
	FeeScheduleLevelAmounts         []feemodel.LevelAmount `json:"fee_schedule_level_amounts"`
	FeeScheduleExtraFees            []feemodel.ExtraFee    `json:"fee_schedule_extra_fees"`
	FeeScheduleTrialDiscountPercent int                    `json:"fee_schedule_trial_discount_percent"`
	FeeScheduleCreatedAt            time.Time              `json:"fee_schedule_created_at"`
	FeeScheduleUpdatedAt            time.Time              `json:"fee_schedule_updated_at"`
	FeeScheduleDeletedAt            *time.Time             `json:"fee_schedule_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToFeeScheduleResponse(m feemodel.FeeSchedule) FeeScheduleResponse {
	return FeeScheduleResponse{
		FeeScheduleID:                   m.FeeScheduleID,
		FeeScheduleMonth:                m.FeeScheduleMonth,
		FeeScheduleYear:                 m.FeeScheduleYear,
		FeeScheduleLevelAmounts:         m.FeeScheduleLevelAmounts,
		FeeScheduleExtraFees:            m.FeeScheduleExtraFees,
		FeeScheduleTrialDiscountPercent: m.FeeScheduleTrialDiscountPercent,
		FeeScheduleCreatedAt:            m.FeeScheduleCreatedAt,
		FeeScheduleUpdatedAt:            m.FeeScheduleUpdatedAt,
		FeeScheduleDeletedAt:            toPtrTimeFromDeletedAt(m.FeeScheduleDeletedAt),
	}
}

func ToFeeScheduleResponses(list []feemodel.FeeSchedule) []FeeScheduleResponse {
	out := make([]FeeScheduleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeScheduleResponse(v))
	}
	return out
}

func FeeScheduleCreateDTOToModel(d FeeScheduleCreateDTO) feemodel.FeeSchedule {
	return feemodel.FeeSchedule{
		FeeScheduleMonth:                d.FeeScheduleMonth,
		FeeScheduleYear:                 d.FeeScheduleYear,
		FeeScheduleLevelAmounts:         d.FeeScheduleLevelAmounts,
		FeeScheduleExtraFees:            d.FeeScheduleExtraFees,
		FeeScheduleTrialDiscountPercent: d.FeeScheduleTrialDiscountPercent,
	}
}

// ApplyFeeScheduleUpdate: partial update, periode tidak disentuh.
func ApplyFeeScheduleUpdate(m *feemodel.FeeSchedule, d FeeScheduleUpdateDTO) {
	if d.FeeScheduleLevelAmounts != nil {
		m.FeeScheduleLevelAmounts = *d.FeeScheduleLevelAmounts
	}
	if d.FeeScheduleExtraFees != nil {
		m.FeeScheduleExtraFees = *d.FeeScheduleExtraFees
	}
	if d.FeeScheduleTrialDiscountPercent != nil {
		m.FeeScheduleTrialDiscountPercent = *d.FeeScheduleTrialDiscountPercent
	}
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
