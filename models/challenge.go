package models

import (
	"time"

	"gorm.io/gorm"
)

// ChallengeTarget is the typed target template for a challenge. A metric
// participates in scoring only when its value is finite and greater than
// zero; everything else is excluded, not treated as already met.
type ChallengeTarget struct {
	DurationMinutes float64 `json:"duration_minutes"`
	KcalBurned      float64 `json:"kcal_burned"`
}

type Challenge struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	StartDate   time.Time
	EndDate     time.Time
	Target      ChallengeTarget `gorm:"embedded;embeddedPrefix:target_"`
}

type ChallengeParticipant struct {
	gorm.Model
	ChallengeID     uint `gorm:"not null;uniqueIndex:idx_challenge_participant"`
	UserID          uint `gorm:"not null;uniqueIndex:idx_challenge_participant"`
	ProgressPercent float64
	CompletedAt     *time.Time
}
