package services

import (
	"fmt"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// EnergyConfig carries the tunables of the MET formula so deployments and
// tests can swap them without touching the calculator.
type EnergyConfig struct {
	// BaseSecondsPerRep is the effective time per repetition when the
	// activity's category has no override.
	BaseSecondsPerRep float64
	// CategorySecondsPerRep overrides the per-rep time for activity
	// categories (strength reps take longer than HIIT reps).
	CategorySecondsPerRep map[string]float64
	// IntensityMETFactor scales the effective MET per intensity level 1..5.
	// Level 3 must map to 1.0.
	IntensityMETFactor map[int]float64
	// DefaultWeightKg substitutes for a record carrying no body weight.
	// Zero disables the fallback, making missing weight an error: we never
	// guess a physiologically implausible default.
	DefaultWeightKg float64
}

// DefaultEnergyConfig returns the stock tables.
func DefaultEnergyConfig() EnergyConfig {
	return EnergyConfig{
		BaseSecondsPerRep: 3.5,
		CategorySecondsPerRep: map[string]float64{
			"strength": 5.0,
			"hiit":     2.5,
		},
		IntensityMETFactor: map[int]float64{
			1: 0.8,
			2: 0.9,
			3: 1.0,
			4: 1.1,
			5: 1.2,
		},
	}
}

// EnergyCalculator estimates calories burned for one activity occurrence
// using the MET formula: kcal = MET * 3.5 * weight_kg / 200 * minutes.
//
// Intensity scales the effective MET only; the seconds-per-rep table is
// never intensity-scaled, so the two axes cannot be mixed for one activity.
type EnergyCalculator struct {
	cfg EnergyConfig
}

func NewEnergyCalculator(cfg EnergyConfig) *EnergyCalculator {
	def := DefaultEnergyConfig()
	if cfg.BaseSecondsPerRep <= 0 {
		cfg.BaseSecondsPerRep = def.BaseSecondsPerRep
	}
	if cfg.IntensityMETFactor == nil {
		cfg.IntensityMETFactor = def.IntensityMETFactor
	}
	return &EnergyCalculator{cfg: cfg}
}

// EstimateKcalBurned derives the effective exercise minutes from the record
// according to the activity's declared mode, then applies the MET formula.
// A record whose fields contradict the mode (reps for an hour-mode activity
// or vice versa) is rejected, never silently treated as zero. A missing
// intensity level (0) means the mid-point, level 3.
func (c *EnergyCalculator) EstimateKcalBurned(activity *models.Activity, rec *models.ActivityRecord) (float64, error) {
	if activity.SupportsRep == activity.SupportsHour {
		return 0, fmt.Errorf("%w: activity %q", ErrInconsistentActivity, activity.Name)
	}
	if !isFinite(activity.METValue) || activity.METValue <= 0 {
		return 0, fmt.Errorf("%w: met_value must be positive", ErrInvalidActivityRecord)
	}

	weight := rec.UserWeightKg
	if !isFinite(weight) || weight <= 0 {
		if c.cfg.DefaultWeightKg > 0 {
			weight = c.cfg.DefaultWeightKg
		} else {
			return 0, fmt.Errorf("%w: body weight missing and no default configured", ErrInvalidActivityRecord)
		}
	}

	level := rec.IntensityLevel
	if level == 0 {
		level = 3
	}
	factor, ok := c.cfg.IntensityMETFactor[level]
	if !ok {
		return 0, fmt.Errorf("%w: intensity level %d outside 1..5", ErrInvalidActivityRecord, rec.IntensityLevel)
	}

	var minutes float64
	if activity.SupportsHour {
		if rec.Reps != 0 {
			return 0, fmt.Errorf("%w: reps supplied for duration-mode activity %q", ErrInvalidActivityRecord, activity.Name)
		}
		if !isFinite(rec.DurationMinutes) || rec.DurationMinutes <= 0 {
			return 0, fmt.Errorf("%w: duration_minutes must be positive", ErrInvalidActivityRecord)
		}
		minutes = rec.DurationMinutes
	} else {
		if rec.DurationMinutes != 0 {
			return 0, fmt.Errorf("%w: duration supplied for rep-mode activity %q", ErrInvalidActivityRecord, activity.Name)
		}
		if rec.Reps <= 0 {
			return 0, fmt.Errorf("%w: reps must be positive", ErrInvalidActivityRecord)
		}
		minutes = float64(rec.Reps) * c.secondsPerRep(activity.Category) / 60
	}

	kcal := activity.METValue * factor * 3.5 * weight / 200 * minutes
	if !isFinite(kcal) || kcal < 0 {
		return 0, fmt.Errorf("%w: computed kcal is not a finite non-negative number", ErrInvalidActivityRecord)
	}
	return kcal, nil
}

func (c *EnergyCalculator) secondsPerRep(category string) float64 {
	if s, ok := c.cfg.CategorySecondsPerRep[category]; ok && s > 0 {
		return s
	}
	return c.cfg.BaseSecondsPerRep
}
