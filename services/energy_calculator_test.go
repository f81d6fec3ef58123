package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

func hourActivity(met float64) *models.Activity {
	return &models.Activity{Name: "running", METValue: met, SupportsHour: true, Category: "cardio"}
}

func repActivity(met float64, category string) *models.Activity {
	return &models.Activity{Name: "push-ups", METValue: met, SupportsRep: true, Category: category}
}

// TestEstimateKcalBurned_DurationScenario checks the reference scenario:
// MET=8, 70kg, 30min at default intensity -> 8*3.5*70/200*30 = 294.
func TestEstimateKcalBurned_DurationScenario(t *testing.T) {
	calc := NewEnergyCalculator(DefaultEnergyConfig())
	kcal, err := calc.EstimateKcalBurned(hourActivity(8), &models.ActivityRecord{
		DurationMinutes: 30,
		UserWeightKg:    70,
	})
	require.NoError(t, err)
	assert.InDelta(t, 294, kcal, 1e-9)
}

// TestEstimateKcalBurned_RepModeStrength: strength reps take 5s each, so
// 60 reps = 5 minutes; MET=6, 80kg -> 6*3.5*80/200*5 = 42.
func TestEstimateKcalBurned_RepModeStrength(t *testing.T) {
	calc := NewEnergyCalculator(DefaultEnergyConfig())
	kcal, err := calc.EstimateKcalBurned(repActivity(6, "strength"), &models.ActivityRecord{
		Reps:           60,
		IntensityLevel: 3,
		UserWeightKg:   80,
	})
	require.NoError(t, err)
	assert.InDelta(t, 42, kcal, 1e-9)
}

// TestEstimateKcalBurned_RepModeBaseSeconds: an unknown category falls back
// to the base 3.5 s/rep. 120 reps = 7 minutes; 4*3.5*50/200*7 = 24.5.
func TestEstimateKcalBurned_RepModeBaseSeconds(t *testing.T) {
	calc := NewEnergyCalculator(DefaultEnergyConfig())
	kcal, err := calc.EstimateKcalBurned(repActivity(4, "misc"), &models.ActivityRecord{
		Reps:         120,
		UserWeightKg: 50,
	})
	require.NoError(t, err)
	assert.InDelta(t, 24.5, kcal, 1e-9)
}

// TestEstimateKcalBurned_IntensityScalesMET: intensity scales the effective
// MET only. Level 5 burns 1.2x the mid-point estimate, level 1 burns 0.8x,
// and a missing level (0) equals level 3.
func TestEstimateKcalBurned_IntensityScalesMET(t *testing.T) {
	calc := NewEnergyCalculator(DefaultEnergyConfig())
	rec := func(level int) *models.ActivityRecord {
		return &models.ActivityRecord{DurationMinutes: 30, IntensityLevel: level, UserWeightKg: 70}
	}

	mid, err := calc.EstimateKcalBurned(hourActivity(8), rec(3))
	require.NoError(t, err)
	high, err := calc.EstimateKcalBurned(hourActivity(8), rec(5))
	require.NoError(t, err)
	low, err := calc.EstimateKcalBurned(hourActivity(8), rec(1))
	require.NoError(t, err)
	unset, err := calc.EstimateKcalBurned(hourActivity(8), rec(0))
	require.NoError(t, err)

	assert.InDelta(t, mid*1.2, high, 1e-9)
	assert.InDelta(t, mid*0.8, low, 1e-9)
	assert.Equal(t, mid, unset)
}

// TestEstimateKcalBurned_WeightFallback: a configured default weight fills in
// for a record without one; without the config it is an error.
func TestEstimateKcalBurned_WeightFallback(t *testing.T) {
	cfg := DefaultEnergyConfig()
	cfg.DefaultWeightKg = 70
	withFallback := NewEnergyCalculator(cfg)
	noFallback := NewEnergyCalculator(DefaultEnergyConfig())

	rec := &models.ActivityRecord{DurationMinutes: 30}

	kcal, err := withFallback.EstimateKcalBurned(hourActivity(8), rec)
	require.NoError(t, err)
	assert.InDelta(t, 294, kcal, 1e-9)

	_, err = noFallback.EstimateKcalBurned(hourActivity(8), rec)
	assert.ErrorIs(t, err, ErrInvalidActivityRecord)
}

// TestEstimateKcalBurned_InvalidRecords covers the rejection paths: the
// calculator fails loudly instead of returning a silent zero.
func TestEstimateKcalBurned_InvalidRecords(t *testing.T) {
	calc := NewEnergyCalculator(DefaultEnergyConfig())

	cases := []struct {
		name     string
		activity *models.Activity
		record   *models.ActivityRecord
		want     error
	}{
		{
			"reps for duration-mode activity",
			hourActivity(8),
			&models.ActivityRecord{DurationMinutes: 30, Reps: 10, UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"duration for rep-mode activity",
			repActivity(6, "strength"),
			&models.ActivityRecord{DurationMinutes: 5, UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"zero duration",
			hourActivity(8),
			&models.ActivityRecord{UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"zero reps",
			repActivity(6, "strength"),
			&models.ActivityRecord{UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"non-positive MET",
			hourActivity(0),
			&models.ActivityRecord{DurationMinutes: 30, UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"intensity out of range",
			hourActivity(8),
			&models.ActivityRecord{DurationMinutes: 30, IntensityLevel: 7, UserWeightKg: 70},
			ErrInvalidActivityRecord,
		},
		{
			"activity supports both modes",
			&models.Activity{Name: "broken", METValue: 8, SupportsRep: true, SupportsHour: true},
			&models.ActivityRecord{DurationMinutes: 30, UserWeightKg: 70},
			ErrInconsistentActivity,
		},
		{
			"activity supports neither mode",
			&models.Activity{Name: "broken", METValue: 8},
			&models.ActivityRecord{DurationMinutes: 30, UserWeightKg: 70},
			ErrInconsistentActivity,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.EstimateKcalBurned(tc.activity, tc.record)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
