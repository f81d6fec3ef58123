package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Birthday time.Time
	WeightKg float64
	HeightCm float64
}
