package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// ActivityLogService logs physical activity against the daily ledger,
// estimating the energy burned at log time with the injected calculator.
type ActivityLogService struct {
	db     *gorm.DB
	ledger *LedgerService
	calc   *EnergyCalculator
}

func NewActivityLogService(db *gorm.DB, ledger *LedgerService, calc *EnergyCalculator) *ActivityLogService {
	return &ActivityLogService{db: db, ledger: ledger, calc: calc}
}

// ActivityLogRequest carries one activity occurrence. DurationMinutes is for
// hour-mode activities, Reps for rep-mode; leave the other at zero. A zero
// WeightKg falls back to the user's profile weight.
type ActivityLogRequest struct {
	ActivityID      uint      `json:"activity_id"`
	PerformedAt     time.Time `json:"performed_at"`
	DurationMinutes float64   `json:"duration_minutes"`
	Reps            int       `json:"reps"`
	IntensityLevel  int       `json:"intensity_level"`
	WeightKg        float64   `json:"weight_kg"`
}

// LogActivity estimates calories for one occurrence, attaches the record to
// the day's ledger and recomputes the day's totals.
func (s *ActivityLogService) LogActivity(userID uint, req ActivityLogRequest) (*models.ActivityRecord, error) {
	var act models.Activity
	if err := s.db.First(&act, req.ActivityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: activity %d", ErrNotFound, req.ActivityID)
		}
		return nil, err
	}

	weight := req.WeightKg
	if weight <= 0 {
		var user models.User
		if err := s.db.First(&user, userID).Error; err == nil {
			weight = user.WeightKg
		}
	}

	performedAt := req.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now()
	}

	rec := &models.ActivityRecord{
		UserID:          userID,
		ActivityID:      act.ID,
		PerformedAt:     performedAt,
		DurationMinutes: req.DurationMinutes,
		Reps:            req.Reps,
		IntensityLevel:  req.IntensityLevel,
		UserWeightKg:    weight,
	}
	kcal, err := s.calc.EstimateKcalBurned(&act, rec)
	if err != nil {
		return nil, err
	}
	rec.KcalBurned = kcal

	ledger, err := s.ledger.GetOrCreate(userID, performedAt)
	if err != nil {
		return nil, err
	}
	rec.LedgerID = ledger.ID

	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}
	if err := s.afterChange(userID, ledger.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteActivityRecord removes a record owned by the user and recomputes the
// affected ledger.
func (s *ActivityLogService) DeleteActivityRecord(userID, recordID uint) error {
	var rec models.ActivityRecord
	if err := s.db.First(&rec, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: activity record %d", ErrNotFound, recordID)
		}
		return err
	}
	if rec.UserID != userID {
		return fmt.Errorf("%w: activity record %d", ErrNotFound, recordID)
	}
	if err := s.db.Delete(&rec).Error; err != nil {
		return err
	}
	return s.afterChange(userID, rec.LedgerID)
}

// ListActivityRecords returns a user's records, newest first.
func (s *ActivityLogService) ListActivityRecords(userID uint) ([]models.ActivityRecord, error) {
	var recs []models.ActivityRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("performed_at desc").
		Find(&recs).Error
	return recs, err
}

func (s *ActivityLogService) afterChange(userID, ledgerID uint) error {
	if err := s.ledger.Recompute(ledgerID); err != nil {
		return err
	}
	var updated models.DailyLedger
	if err := s.db.First(&updated, ledgerID).Error; err == nil {
		EmitLedgerUpdated(userID, &updated)
	}
	return nil
}
