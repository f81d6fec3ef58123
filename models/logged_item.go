package models

import "gorm.io/gorm"

// LoggedIngredient is one weighed ingredient portion attached to a ledger.
// Totals are absolute (not per-100g), computed once at log time and summed
// by LedgerService.Recompute.
type LoggedIngredient struct {
	gorm.Model
	LedgerID     uint `gorm:"index;not null"`
	IngredientID uint `gorm:"index;not null"`
	QuantityKg   float64
	Totals       NutritionFact `gorm:"embedded;embeddedPrefix:total_"`
}

// LoggedMeal is one logged meal serving attached to a ledger. QuantityKg
// is derived from Servings and the meal's serving weight at log time.
type LoggedMeal struct {
	gorm.Model
	LedgerID   uint `gorm:"index;not null"`
	MealID     uint `gorm:"index;not null"`
	Servings   float64
	QuantityKg float64
	Totals     NutritionFact `gorm:"embedded;embeddedPrefix:total_"`
}
