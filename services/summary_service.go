package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// SummaryService reports ledger trends over date ranges. Everything here is
// read-only over rows Recompute already produced.
type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// MetricAvg is one metric averaged over the requested range.
type MetricAvg struct {
	AvgActual  float64 `json:"avg_actual"`
	AvgTarget  float64 `json:"avg_target,omitempty"`
	AvgPercent float64 `json:"avg_percent,omitempty"`
	Unit       string  `json:"unit,omitempty"`
}

type RangeSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Metrics map[string]MetricAvg `json:"metrics"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// Summary averages a user's daily totals over [from, to]. With
// includeMissing, days without a ledger count as zero days, which drags the
// averages down; without it, only logged days are averaged.
func (s *SummaryService) Summary(
	ctx context.Context, userID uint, from, to time.Time, includeMissing bool,
) (*RangeSummary, error) {
	fromDay, toDay := DateOnly(from), DateOnly(to)
	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("%w: 'to' must be on or after 'from'", ErrInvalidInput)
	}

	rows, err := s.ledgersInRange(ctx, userID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := map[string]models.DailyLedger{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	var dates []time.Time
	if includeMissing {
		for d := fromDay; !d.After(toDay); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	} else {
		for _, r := range rows {
			dates = append(dates, DateOnly(r.Date))
		}
	}

	type acc struct{ sum, psum float64 }
	m := map[string]*acc{
		"kcal_eaten": {}, "kcal_burned": {}, "kcal_net": {},
		"protein_g": {}, "fat_g": {}, "carbs_g": {}, "fiber_g": {},
		"water_l": {},
	}

	for _, d := range dates {
		ledger := idx[d.Format("2006-01-02")] // zero value for missing days

		type pair struct {
			key    string
			actual float64
			target float64
		}
		for _, p := range []pair{
			{"kcal_eaten", ledger.TotalKcalEaten, goal.Kcal},
			{"kcal_burned", ledger.TotalKcalBurned, goal.BurnKcal},
			{"kcal_net", ledger.TotalKcal, 0},
			{"protein_g", ledger.TotalProteinG, goal.ProteinG},
			{"fat_g", ledger.TotalFatG, goal.FatG},
			{"carbs_g", ledger.TotalCarbsG, goal.CarbsG},
			{"fiber_g", ledger.TotalFiberG, goal.FiberG},
			{"water_l", ledger.WaterL, goal.WaterL},
		} {
			m[p.key].sum += p.actual
			if p.target > 0 {
				m[p.key].psum += p.actual / p.target * 100
			}
		}
	}

	out := &RangeSummary{}
	out.Range.From = fromDay.Format("2006-01-02")
	out.Range.To = toDay.Format("2006-01-02")
	out.Metadata.DaysCounted = len(dates)
	out.Metadata.IncludeMissingDays = includeMissing

	n := len(dates)
	out.Metrics = map[string]MetricAvg{
		"kcal_eaten":  {AvgActual: avgOf(m["kcal_eaten"].sum, n), AvgTarget: goal.Kcal, AvgPercent: avgOf(m["kcal_eaten"].psum, n), Unit: "kcal"},
		"kcal_burned": {AvgActual: avgOf(m["kcal_burned"].sum, n), AvgTarget: goal.BurnKcal, AvgPercent: avgOf(m["kcal_burned"].psum, n), Unit: "kcal"},
		"kcal_net":    {AvgActual: avgOf(m["kcal_net"].sum, n), Unit: "kcal"},
		"protein_g":   {AvgActual: avgOf(m["protein_g"].sum, n), AvgTarget: goal.ProteinG, AvgPercent: avgOf(m["protein_g"].psum, n), Unit: "g"},
		"fat_g":       {AvgActual: avgOf(m["fat_g"].sum, n), AvgTarget: goal.FatG, AvgPercent: avgOf(m["fat_g"].psum, n), Unit: "g"},
		"carbs_g":     {AvgActual: avgOf(m["carbs_g"].sum, n), AvgTarget: goal.CarbsG, AvgPercent: avgOf(m["carbs_g"].psum, n), Unit: "g"},
		"fiber_g":     {AvgActual: avgOf(m["fiber_g"].sum, n), AvgTarget: goal.FiberG, AvgPercent: avgOf(m["fiber_g"].psum, n), Unit: "g"},
		"water_l":     {AvgActual: avgOf(m["water_l"].sum, n), AvgTarget: goal.WaterL, AvgPercent: avgOf(m["water_l"].psum, n), Unit: "L"},
	}
	return out, nil
}

type WeeklyOverview struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type DayDetailed struct {
	Date    string                    `json:"date"`
	Metrics map[string]MetricProgress `json:"metrics"`
}

// Weekly renders seven days starting at weekStart, either as bare
// percentages for charting or with actual/target pairs.
func (s *SummaryService) Weekly(
	ctx context.Context, userID uint, weekStart time.Time, mode string,
) (*WeeklyOverview, error) {
	if mode != "chart" && mode != "detailed" {
		return nil, fmt.Errorf("%w: mode must be 'chart' or 'detailed'", ErrInvalidInput)
	}

	from := DateOnly(weekStart)
	to := from.AddDate(0, 0, 6)

	rows, err := s.ledgersInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := map[string]models.DailyLedger{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	out := &WeeklyOverview{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			key := from.AddDate(0, 0, i).Format("2006-01-02")
			ledger := idx[key]
			days = append(days, DayChart{
				Date: key,
				Percentages: map[string]float64{
					"kcal_eaten":  goalMetric(ledger.TotalKcalEaten, goal.Kcal).Percent,
					"kcal_burned": goalMetric(ledger.TotalKcalBurned, goal.BurnKcal).Percent,
					"protein_g":   goalMetric(ledger.TotalProteinG, goal.ProteinG).Percent,
					"fat_g":       goalMetric(ledger.TotalFatG, goal.FatG).Percent,
					"carbs_g":     goalMetric(ledger.TotalCarbsG, goal.CarbsG).Percent,
					"fiber_g":     goalMetric(ledger.TotalFiberG, goal.FiberG).Percent,
					"water_l":     goalMetric(ledger.WaterL, goal.WaterL).Percent,
				},
			})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		ledger := idx[key]
		days = append(days, DayDetailed{
			Date: key,
			Metrics: map[string]MetricProgress{
				"kcal_eaten":  goalMetric(ledger.TotalKcalEaten, goal.Kcal),
				"kcal_burned": goalMetric(ledger.TotalKcalBurned, goal.BurnKcal),
				"protein_g":   goalMetric(ledger.TotalProteinG, goal.ProteinG),
				"fat_g":       goalMetric(ledger.TotalFatG, goal.FatG),
				"carbs_g":     goalMetric(ledger.TotalCarbsG, goal.CarbsG),
				"fiber_g":     goalMetric(ledger.TotalFiberG, goal.FiberG),
				"water_l":     goalMetric(ledger.WaterL, goal.WaterL),
			},
		})
	}
	out.Days = days
	return out, nil
}

func (s *SummaryService) ledgersInRange(ctx context.Context, userID uint, fromDay, toDay time.Time) ([]models.DailyLedger, error) {
	var rows []models.DailyLedger
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromDay, toDay.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// goalSnapshot returns a zero-target goal when the user never set one, so
// summaries still report actuals.
func (s *SummaryService) goalSnapshot(ctx context.Context, userID uint) (*models.NutritionGoal, error) {
	var g models.NutritionGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NutritionGoal{}, nil
		}
		return nil, err
	}
	return &g, nil
}

func avgOf(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round1(sum / float64(n))
}
