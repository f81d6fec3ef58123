package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/health-pal-uit/health-pal-server-sub001/logger"
	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Meal{},
		&models.Activity{},
		&models.DailyLedger{},
		&models.LoggedIngredient{},
		&models.LoggedMeal{},
		&models.ActivityRecord{},
		&models.Challenge{},
		&models.ChallengeParticipant{},
		&models.NutritionGoal{},
	)
	if err != nil {
		logger.Error("automigrate failed", zap.Error(err))
		os.Exit(1)
	}
}
