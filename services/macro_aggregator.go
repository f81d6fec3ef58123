package services

import (
	"fmt"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// Portion is one weighed quantity of food carrying per-100g nutrition facts.
// It is an ephemeral input; persistence of logged portions belongs to the
// intake service.
type Portion struct {
	QuantityKg float64
	Per100g    models.NutritionFact
}

// MacroSummary is the output of AggregateMacros. Total holds absolute values
// and is left unrounded so callers can keep summing at full precision;
// Per100g is the weight-normalized profile, rounded to one decimal place.
type MacroSummary struct {
	Total        models.NutritionFact `json:"total"`
	Per100g      models.NutritionFact `json:"per_100g"`
	TotalWeightG float64              `json:"total_weight_g"`
}

// AggregateMacros converts weighed portions into absolute macro totals and a
// per-100g profile. An empty portion list is valid and yields all zeros, as
// does a per-100g field left at zero. Negative or non-finite inputs are
// rejected rather than clamped; a negative quantity is an upstream bug we
// must not mask.
func AggregateMacros(portions []Portion) (MacroSummary, error) {
	var out MacroSummary
	for i, p := range portions {
		if !isFinite(p.QuantityKg) || p.QuantityKg <= 0 {
			return MacroSummary{}, fmt.Errorf("%w: portion %d: quantity_kg must be positive and finite", ErrInvalidInput, i)
		}
		if err := checkNutritionFact(p.Per100g); err != nil {
			return MacroSummary{}, fmt.Errorf("portion %d: %w", i, err)
		}

		// per-100g values scale by quantity_kg*1000/100.
		scale := p.QuantityKg * 10
		out.Total.Kcal += p.Per100g.Kcal * scale
		out.Total.ProteinG += p.Per100g.ProteinG * scale
		out.Total.FatG += p.Per100g.FatG * scale
		out.Total.CarbsG += p.Per100g.CarbsG * scale
		out.Total.FiberG += p.Per100g.FiberG * scale
		out.TotalWeightG += p.QuantityKg * 1000
	}

	// Zero total weight yields a zero profile, defined rather than an error.
	if out.TotalWeightG > 0 {
		out.Per100g = models.NutritionFact{
			Kcal:     round1(out.Total.Kcal / out.TotalWeightG * 100),
			ProteinG: round1(out.Total.ProteinG / out.TotalWeightG * 100),
			FatG:     round1(out.Total.FatG / out.TotalWeightG * 100),
			CarbsG:   round1(out.Total.CarbsG / out.TotalWeightG * 100),
			FiberG:   round1(out.Total.FiberG / out.TotalWeightG * 100),
		}
	}
	return out, nil
}

func checkNutritionFact(f models.NutritionFact) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"kcal", f.Kcal},
		{"protein_g", f.ProteinG},
		{"fat_g", f.FatG},
		{"carbs_g", f.CarbsG},
		{"fiber_g", f.FiberG},
	}
	for _, fld := range fields {
		if !isFinite(fld.v) || fld.v < 0 {
			return fmt.Errorf("%w: nutrition fact %s must be non-negative and finite", ErrInvalidInput, fld.name)
		}
	}
	return nil
}
