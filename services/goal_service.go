package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// GoalService manages per-user daily targets and scores a day's ledger
// against them.
type GoalService struct {
	db     *gorm.DB
	ledger *LedgerService
}

func NewGoalService(db *gorm.DB, ledger *LedgerService) *GoalService {
	return &GoalService{db: db, ledger: ledger}
}

type GoalInput struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
	WaterL   float64 `json:"water_l"`
	BurnKcal float64 `json:"burn_kcal"`
}

func (in GoalInput) validate() error {
	fields := map[string]float64{
		"kcal": in.Kcal, "protein_g": in.ProteinG, "fat_g": in.FatG,
		"carbs_g": in.CarbsG, "fiber_g": in.FiberG, "water_l": in.WaterL,
		"burn_kcal": in.BurnKcal,
	}
	for name, v := range fields {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%w: %s must be non-negative and finite", ErrInvalidInput, name)
		}
	}
	return nil
}

// Upsert sets the user's daily targets, creating the row on first call. A
// target of 0 means the metric is not tracked.
func (s *GoalService) Upsert(userID uint, in GoalInput) (*models.NutritionGoal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutritionGoal{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	goal.Kcal = in.Kcal
	goal.ProteinG = in.ProteinG
	goal.FatG = in.FatG
	goal.CarbsG = in.CarbsG
	goal.FiberG = in.FiberG
	goal.WaterL = in.WaterL
	goal.BurnKcal = in.BurnKcal

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Get returns the user's targets or ErrNotFound when none are set yet.
func (s *GoalService) Get(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no goals set for user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return &goal, nil
}

// MetricProgress is one metric's standing against its daily target.
type MetricProgress struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// Progress scores the given day's ledger against the user's targets. A
// missing goal row scores everything 0; a missing ledger reads as an empty
// day rather than an error, so clients can render the dashboard before the
// first log of the day.
func (s *GoalService) Progress(userID uint, date time.Time) (*models.NutritionGoal, map[string]MetricProgress, error) {
	goal := &models.NutritionGoal{UserID: userID}
	if g, err := s.Get(userID); err == nil {
		goal = g
	} else if !errors.Is(err, ErrNotFound) {
		return nil, nil, err
	}

	ledger := &models.DailyLedger{UserID: userID, Date: DateOnly(date)}
	if l, err := s.ledger.GetByDate(userID, date); err == nil {
		ledger = l
	} else if !errors.Is(err, ErrLedgerNotFound) {
		return nil, nil, err
	}

	progress := map[string]MetricProgress{
		"kcal_eaten":  goalMetric(ledger.TotalKcalEaten, goal.Kcal),
		"protein_g":   goalMetric(ledger.TotalProteinG, goal.ProteinG),
		"fat_g":       goalMetric(ledger.TotalFatG, goal.FatG),
		"carbs_g":     goalMetric(ledger.TotalCarbsG, goal.CarbsG),
		"fiber_g":     goalMetric(ledger.TotalFiberG, goal.FiberG),
		"water_l":     goalMetric(ledger.WaterL, goal.WaterL),
		"kcal_burned": goalMetric(ledger.TotalKcalBurned, goal.BurnKcal),
	}
	return goal, progress, nil
}

// goalMetric caps at 100: for daily targets "done" is done, overshoot is not
// extra credit.
func goalMetric(actual, target float64) MetricProgress {
	m := MetricProgress{Actual: round1(actual), Target: target}
	if target > 0 {
		pct := actual / target * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		m.Percent = round1(pct)
	}
	return m
}
