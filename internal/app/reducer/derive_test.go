package reducer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityhospital/assistant/internal/domain"
)

func TestVitalRisk(t *testing.T) {
	tests := []struct {
		vitalType string
		value     string
		want      domain.VitalLevel
	}{
		{"Blood Pressure", "150/95", domain.VitalLevelHigh},
		{"Blood Pressure", "85/60", domain.VitalLevelLow},
		{"Blood Pressure", "120/80", domain.VitalLevelNormal},
		{"Blood Pressure", "140/90", domain.VitalLevelNormal}, // thresholds are strict
		{"Blood Pressure", "garbage", domain.VitalLevelNormal},
		{"Heart Rate", "110", domain.VitalLevelHigh},
		{"Heart Rate", "55", domain.VitalLevelLow},
		{"Heart Rate", "72", domain.VitalLevelNormal},
		{"Heart Rate", "not a number", domain.VitalLevelNormal},
		{"Temperature", "98.6", domain.VitalLevelNormal},
		{"Oxygen Saturation", "91", domain.VitalLevelNormal},
	}

	for _, tt := range tests {
		got := VitalRisk(tt.vitalType, tt.value)
		assert.Equal(t, tt.want, got, "%s %s", tt.vitalType, tt.value)
	}
}

func TestGestationalWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Exactly 140 days before now is week 20.
	lmp := now.AddDate(0, 0, -140).Format("2006-01-02")
	week, ok := GestationalWeek(lmp, now)
	require.True(t, ok)
	assert.Equal(t, 20, week)

	_, ok = GestationalWeek("", now)
	assert.False(t, ok)
	_, ok = GestationalWeek("not-a-date", now)
	assert.False(t, ok)

	// A future LMP clamps to week zero instead of going negative.
	week, ok = GestationalWeek(now.AddDate(0, 0, 10).Format("2006-01-02"), now)
	require.True(t, ok)
	assert.Equal(t, 0, week)
}

func TestTrimesterBands(t *testing.T) {
	assert.Equal(t, 1, Trimester(0))
	assert.Equal(t, 1, Trimester(12))
	assert.Equal(t, 2, Trimester(13))
	assert.Equal(t, 2, Trimester(20))
	assert.Equal(t, 2, Trimester(26))
	assert.Equal(t, 3, Trimester(27))
	assert.Equal(t, 3, Trimester(40))
}

func TestDerivePregnancyOverridesCallerWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	lmp := now.AddDate(0, 0, -140).Format("2006-01-02")

	rec := domain.PregnancyRecord{LMPDate: lmp, CurrentWeek: 99}
	derivePregnancy(&rec, now)

	assert.Equal(t, 20, rec.CurrentWeek)
	assert.Equal(t, 2, rec.Trimester)
	assert.NotEmpty(t, rec.EDDate)

	// Without a parseable LMP the caller's week stands.
	rec = domain.PregnancyRecord{CurrentWeek: 30}
	derivePregnancy(&rec, now)
	assert.Equal(t, 30, rec.CurrentWeek)
	assert.Equal(t, 3, rec.Trimester)
}
