package models

import "gorm.io/gorm"

// Activity is a catalog activity definition. Exactly one of SupportsRep /
// SupportsHour must be true; enforced when the catalog entry is created.
type Activity struct {
	gorm.Model
	Name         string  `gorm:"uniqueIndex;not null"`
	METValue     float64 `gorm:"not null"`
	SupportsRep  bool
	SupportsHour bool
	Category     string `gorm:"size:32"` // e.g. "strength" | "hiit" | "cardio"
}
