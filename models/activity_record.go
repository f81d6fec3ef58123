package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityRecord is one logged occurrence of an activity. DurationMinutes
// is set for hour-mode activities and Reps for rep-mode; zero means the
// field was not supplied. KcalBurned is computed once at log time.
type ActivityRecord struct {
	gorm.Model
	LedgerID        uint `gorm:"index;not null"`
	UserID          uint `gorm:"index;not null"`
	ActivityID      uint `gorm:"index;not null"`
	PerformedAt     time.Time `gorm:"index"`
	DurationMinutes float64
	Reps            int
	IntensityLevel  int // 1..5, 0 = unspecified (defaults to 3)
	UserWeightKg    float64
	KcalBurned      float64
}
