// file: internals/features/billing/fees/model/fee_schedule_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFee(t *testing.T) {
	m := FeeSchedule{
		FeeScheduleLevelAmounts: []LevelAmount{
			{LevelCode: "SD", AmountIDR: 2_000_000},
			{LevelCode: "smp ", AmountIDR: 2_600_000},
		},
	}

	// Lookup case-insensitive + trim.
	got, ok := m.LevelFee("sd")
	assert.True(t, ok)
	assert.Equal(t, 2_000_000, got)

	got, ok = m.LevelFee(" SMP")
	assert.True(t, ok)
	assert.Equal(t, 2_600_000, got)

	_, ok = m.LevelFee("tk")
	assert.False(t, ok)
}
