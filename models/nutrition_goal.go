package models

import (
	"gorm.io/gorm"
)

// NutritionGoal holds a user's daily targets. One row per user; updating
// goals overwrites the previous targets rather than versioning them.
type NutritionGoal struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Kcal     float64 // e.g. 2200 kcal eaten
	ProteinG float64 // e.g. 120 g
	FatG     float64 // e.g. 70 g
	CarbsG   float64 // e.g. 275 g
	FiberG   float64 // e.g. 30 g
	WaterL   float64 // e.g. 2.5 L
	BurnKcal float64 // e.g. 400 kcal from exercise
}
