package services

import "github.com/health-pal-uit/health-pal-server-sub001/models"

// ChallengeMetric enumerates the metrics a challenge target can score.
// Keeping this an explicit set (instead of branching on dynamic field names)
// means an unrecognized metric cannot be silently ignored at a distance;
// it simply cannot be expressed.
type ChallengeMetric string

const (
	MetricDurationMinutes ChallengeMetric = "duration_minutes"
	MetricKcalBurned      ChallengeMetric = "kcal_burned"
)

// Contribution is one activity record's values toward a challenge.
type Contribution struct {
	DurationMinutes float64
	KcalBurned      float64
}

func (c Contribution) value(m ChallengeMetric) float64 {
	switch m {
	case MetricDurationMinutes:
		return c.DurationMinutes
	case MetricKcalBurned:
		return c.KcalBurned
	}
	return 0
}

// ProgressAccumulator scores activity contributions against a challenge
// target. It lives for a single scoring request and is not safe for
// concurrent use. Duplicate Add calls double-count; de-duplication, keyed by
// activity-record identity, is the caller's job.
type ProgressAccumulator struct {
	targets  map[ChallengeMetric]float64
	achieved map[ChallengeMetric]float64
}

// NewProgressAccumulator scans the target for qualifying metrics: values that
// are finite and strictly positive. A target with no qualifying metric always
// reports 0%: an empty target is not "already complete".
func NewProgressAccumulator(target models.ChallengeTarget) *ProgressAccumulator {
	a := &ProgressAccumulator{
		targets:  make(map[ChallengeMetric]float64, 2),
		achieved: make(map[ChallengeMetric]float64, 2),
	}
	raw := map[ChallengeMetric]float64{
		MetricDurationMinutes: target.DurationMinutes,
		MetricKcalBurned:      target.KcalBurned,
	}
	for m, v := range raw {
		if isFinite(v) && v > 0 {
			a.targets[m] = v
		}
	}
	return a
}

// Add accumulates one contribution. A non-finite or non-positive value counts
// as 0 for that metric; the contribution still counts toward the others.
func (a *ProgressAccumulator) Add(c Contribution) {
	for m := range a.targets {
		if v := c.value(m); isFinite(v) && v > 0 {
			a.achieved[m] += v
		}
	}
}

// Percent returns completion in [0,100] rounded to one decimal place. Each
// qualifying metric is capped at 100 and the minimum across them governs: a
// multi-metric challenge is only as complete as its least-satisfied metric.
// Pure read, callable repeatedly with no side effects.
func (a *ProgressAccumulator) Percent() float64 {
	if len(a.targets) == 0 {
		return 0
	}
	lowest := 100.0
	for m, target := range a.targets {
		pct := a.achieved[m] / target * 100
		if pct > 100 {
			pct = 100
		}
		if pct < lowest {
			lowest = pct
		}
	}
	return round1(lowest)
}
