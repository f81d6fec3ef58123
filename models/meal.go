package models

import "gorm.io/gorm"

// Meal is a catalog dish. ServingWeightG is the weight of one serving,
// used to convert logged servings into a weighed quantity.
type Meal struct {
	gorm.Model
	Name           string `gorm:"not null"`
	ServingWeightG float64
	Per100g        NutritionFact `gorm:"embedded"`
}
