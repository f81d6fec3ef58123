package models

import "gorm.io/gorm"

// A catalog ingredient with its per-100g nutrition facts.
type Ingredient struct {
	gorm.Model
	Name    string        `gorm:"uniqueIndex;not null"`
	Per100g NutritionFact `gorm:"embedded"`
}
