package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGoalMetric: daily-target scoring caps at 100 and rounds to one
// decimal; an unset target scores 0.
func TestGoalMetric(t *testing.T) {
	m := goalMetric(50, 100)
	assert.Equal(t, 50.0, m.Percent)
	assert.Equal(t, 50.0, m.Actual)
	assert.Equal(t, 100.0, m.Target)

	// overshoot: 2500/2000 would be 125%, reported as 100
	assert.Equal(t, 100.0, goalMetric(2500, 2000).Percent)

	// unset target: metric not tracked
	assert.Equal(t, 0.0, goalMetric(500, 0).Percent)

	// 1/3 -> 33.3
	assert.Equal(t, 33.3, goalMetric(1, 3).Percent)

	// negative actual (net kcal style) never yields a negative percent
	assert.Equal(t, 0.0, goalMetric(-10, 100).Percent)
}

// TestGoalInputValidate: targets must be finite and non-negative; zero is
// valid and means "not tracked".
func TestGoalInputValidate(t *testing.T) {
	assert.NoError(t, GoalInput{}.validate())
	assert.NoError(t, GoalInput{Kcal: 2200, ProteinG: 120, WaterL: 2.5}.validate())

	assert.ErrorIs(t, GoalInput{Kcal: -1}.validate(), ErrInvalidInput)
	assert.ErrorIs(t, GoalInput{ProteinG: math.NaN()}.validate(), ErrInvalidInput)
	assert.ErrorIs(t, GoalInput{BurnKcal: math.Inf(1)}.validate(), ErrInvalidInput)
}

// TestAvgOf: averaging guards the empty range and rounds to one decimal.
func TestAvgOf(t *testing.T) {
	assert.Equal(t, 0.0, avgOf(100, 0))
	assert.Equal(t, 50.0, avgOf(100, 2))
	assert.Equal(t, 33.3, avgOf(100, 3)) // 33.333... -> 33.3
}
