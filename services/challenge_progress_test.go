package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// TestPercent_ANDSemantics: with both metrics qualifying, the minimum
// governs. Fully meeting the duration target while burning nothing is 0%,
// not 50%.
func TestPercent_ANDSemantics(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 30, KcalBurned: 300})
	acc.Add(Contribution{DurationMinutes: 30, KcalBurned: 0})
	assert.Equal(t, 0.0, acc.Percent())

	acc.Add(Contribution{KcalBurned: 150})
	assert.Equal(t, 50.0, acc.Percent())

	acc.Add(Contribution{KcalBurned: 150})
	assert.Equal(t, 100.0, acc.Percent())
}

// TestPercent_ZeroTargetExcluded: a non-positive target drops the metric
// from scoring entirely instead of penalizing it.
func TestPercent_ZeroTargetExcluded(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 0, KcalBurned: 200})
	acc.Add(Contribution{KcalBurned: 200})
	assert.Equal(t, 100.0, acc.Percent())
}

// TestPercent_NoQualifyingMetric: an empty target is never "already
// complete"; it scores 0 regardless of what is added.
func TestPercent_NoQualifyingMetric(t *testing.T) {
	for _, target := range []models.ChallengeTarget{
		{},
		{DurationMinutes: -10, KcalBurned: 0},
		{DurationMinutes: math.Inf(1)},
		{KcalBurned: math.NaN()},
	} {
		acc := NewProgressAccumulator(target)
		acc.Add(Contribution{DurationMinutes: 1000, KcalBurned: 1000})
		assert.Equal(t, 0.0, acc.Percent())
	}
}

// TestPercent_Monotonic: adding non-negative contributions never lowers the
// percentage.
func TestPercent_Monotonic(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 120, KcalBurned: 500})
	prev := acc.Percent()
	steps := []Contribution{
		{DurationMinutes: 20, KcalBurned: 80},
		{DurationMinutes: 0, KcalBurned: 200},
		{DurationMinutes: 45},
		{DurationMinutes: 90, KcalBurned: 400},
	}
	for _, c := range steps {
		acc.Add(c)
		cur := acc.Percent()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

// TestPercent_CappedAt100: overshooting a metric cannot push the result
// past 100.
func TestPercent_CappedAt100(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{KcalBurned: 100})
	acc.Add(Contribution{KcalBurned: 10000})
	assert.Equal(t, 100.0, acc.Percent())
}

// TestAdd_BadValuesCountAsZero: a non-finite or non-positive value counts
// as 0 for that metric, while the same contribution still counts toward the
// other metric.
func TestAdd_BadValuesCountAsZero(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 60, KcalBurned: 100})
	acc.Add(Contribution{DurationMinutes: math.NaN(), KcalBurned: 100})
	acc.Add(Contribution{DurationMinutes: -30, KcalBurned: 0})
	acc.Add(Contribution{DurationMinutes: 60, KcalBurned: math.Inf(1)})

	// duration: 0 + 0 + 60 = 60 (100%); kcal: 100 + 0 + 0 = 100 (100%)
	assert.Equal(t, 100.0, acc.Percent())
}

// TestPercent_RoundedToOneDecimal: 1/3 of a 3-minute target is 33.333...,
// reported as 33.3.
func TestPercent_RoundedToOneDecimal(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 3})
	acc.Add(Contribution{DurationMinutes: 1})
	assert.Equal(t, 33.3, acc.Percent())
}

// TestPercent_PureRead: Percent has no side effects; repeated calls agree.
func TestPercent_PureRead(t *testing.T) {
	acc := NewProgressAccumulator(models.ChallengeTarget{DurationMinutes: 50})
	acc.Add(Contribution{DurationMinutes: 20})
	first := acc.Percent()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, acc.Percent())
	}
}
