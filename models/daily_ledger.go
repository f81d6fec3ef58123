package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLedger is the per-user per-day aggregate of everything logged.
// At most one row exists per (user_id, date); Date is stored at UTC midnight.
// All totals except WaterL are derived by LedgerService.Recompute and are
// never mutated incrementally.
type DailyLedger struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_ledger_user_date"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_ledger_user_date"`

	TotalKcalEaten  float64
	TotalKcalBurned float64
	// TotalKcal is the net balance (eaten - burned). It is the only total
	// allowed to go negative.
	TotalKcal     float64
	TotalProteinG float64
	TotalFatG     float64
	TotalCarbsG   float64
	TotalFiberG   float64
	WaterL        float64
}
