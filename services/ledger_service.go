package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/health-pal-uit/health-pal-server-sub001/logger"
	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

// LedgerService owns the daily ledger lifecycle: one row per (user, date),
// created idempotently and recomputed as a whole from its linked entries.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// DateOnly discards the time-of-day component, normalizing to UTC midnight.
// Every ledger lookup and insert goes through this so a 23:59 log and a
// 00:01 log land on the same row.
func DateOnly(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrCreate returns the ledger for (userID, date), inserting a zeroed row
// if none exists. The insert runs as ON CONFLICT DO NOTHING against the
// (user_id, date) unique index, so two concurrent callers logging for the
// same day never race into duplicate rows.
func (s *LedgerService) GetOrCreate(userID uint, date time.Time) (*models.DailyLedger, error) {
	day := DateOnly(date)

	ledger := models.DailyLedger{UserID: userID, Date: day}
	err := s.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&ledger).Error
	if err != nil {
		return nil, err
	}

	// Read back: either the row we just inserted or the pre-existing winner.
	var out models.DailyLedger
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByDate fetches the ledger for (userID, date) without creating one.
func (s *LedgerService) GetByDate(userID uint, date time.Time) (*models.DailyLedger, error) {
	var ledger models.DailyLedger
	err := s.db.Where("user_id = ? AND date = ?", userID, DateOnly(date)).First(&ledger).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no ledger for user %d on %s", ErrLedgerNotFound, userID, DateOnly(date).Format("2006-01-02"))
		}
		return nil, err
	}
	return &ledger, nil
}

// History returns all of a user's ledgers, newest first.
func (s *LedgerService) History(userID uint) ([]models.DailyLedger, error) {
	var ledgers []models.DailyLedger
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&ledgers).Error
	return ledgers, err
}

// Recompute fully replaces the ledger's derived totals from the entries
// currently linked to it. It is never an incremental update, so it stays
// idempotent after any entry is edited or removed. The entry reads and the
// write share one transaction so a concurrent recompute never observes a
// partial entry set. total_kcal is the net balance: eaten minus burned.
func (s *LedgerService) Recompute(ledgerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ledger models.DailyLedger
		if err := tx.First(&ledger, ledgerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrLedgerNotFound, ledgerID)
			}
			return err
		}

		var ingredients []models.LoggedIngredient
		if err := tx.Where("ledger_id = ?", ledger.ID).Find(&ingredients).Error; err != nil {
			return err
		}
		var meals []models.LoggedMeal
		if err := tx.Where("ledger_id = ?", ledger.ID).Find(&meals).Error; err != nil {
			return err
		}
		var records []models.ActivityRecord
		if err := tx.Where("ledger_id = ?", ledger.ID).Find(&records).Error; err != nil {
			return err
		}

		totals := sumLedgerEntries(ingredients, meals, records)

		return tx.Model(&models.DailyLedger{}).
			Where("id = ?", ledger.ID).
			Updates(map[string]interface{}{
				"total_kcal_eaten":  totals.Eaten,
				"total_kcal_burned": totals.Burned,
				"total_kcal":        totals.Net(),
				"total_protein_g":   totals.ProteinG,
				"total_fat_g":       totals.FatG,
				"total_carbs_g":     totals.CarbsG,
				"total_fiber_g":     totals.FiberG,
			}).Error
	})
}

// LedgerTotals is the deterministic sum of a ledger's linked entries.
type LedgerTotals struct {
	Eaten    float64
	Burned   float64
	ProteinG float64
	FatG     float64
	CarbsG   float64
	FiberG   float64
}

// Net is the energy balance: food kcal minus exercise kcal.
func (t LedgerTotals) Net() float64 {
	return t.Eaten - t.Burned
}

// sumLedgerEntries is the pure core of Recompute: a reproducible function of
// the current entry set, so recomputing twice without changes yields
// bit-identical totals.
func sumLedgerEntries(ingredients []models.LoggedIngredient, meals []models.LoggedMeal, records []models.ActivityRecord) LedgerTotals {
	var t LedgerTotals
	for _, e := range ingredients {
		t.Eaten += finiteOrZero(e.Totals.Kcal, "logged_ingredient", e.ID)
		t.ProteinG += finiteOrZero(e.Totals.ProteinG, "logged_ingredient", e.ID)
		t.FatG += finiteOrZero(e.Totals.FatG, "logged_ingredient", e.ID)
		t.CarbsG += finiteOrZero(e.Totals.CarbsG, "logged_ingredient", e.ID)
		t.FiberG += finiteOrZero(e.Totals.FiberG, "logged_ingredient", e.ID)
	}
	for _, e := range meals {
		t.Eaten += finiteOrZero(e.Totals.Kcal, "logged_meal", e.ID)
		t.ProteinG += finiteOrZero(e.Totals.ProteinG, "logged_meal", e.ID)
		t.FatG += finiteOrZero(e.Totals.FatG, "logged_meal", e.ID)
		t.CarbsG += finiteOrZero(e.Totals.CarbsG, "logged_meal", e.ID)
		t.FiberG += finiteOrZero(e.Totals.FiberG, "logged_meal", e.ID)
	}
	for _, r := range records {
		t.Burned += finiteOrZero(r.KcalBurned, "activity_record", r.ID)
	}
	return t
}

// SetWater records the day's water intake directly on the ledger. Water is
// not derived from linked entries, so Recompute leaves it untouched.
func (s *LedgerService) SetWater(userID uint, date time.Time, liters float64) (*models.DailyLedger, error) {
	if !isFinite(liters) || liters < 0 {
		return nil, fmt.Errorf("%w: water_l must be non-negative and finite", ErrInvalidInput)
	}
	ledger, err := s.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(ledger).Update("water_l", liters).Error; err != nil {
		return nil, err
	}
	ledger.WaterL = liters
	return ledger, nil
}

// finiteOrZero guards stored per-entry totals: a NaN/Inf value counts as 0
// instead of poisoning the whole ledger, and is logged so the bad row can be
// tracked down.
func finiteOrZero(v float64, kind string, id uint) float64 {
	if isFinite(v) {
		return v
	}
	logger.Warn("non-finite entry total treated as zero",
		zap.String("entry", kind),
		zap.Uint("id", id),
	)
	return 0
}
