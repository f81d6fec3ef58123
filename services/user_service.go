package services

import (
	"errors"
	"time"

	"github.com/health-pal-uit/health-pal-server-sub001/config"
	"github.com/health-pal-uit/health-pal-server-sub001/models"
	"github.com/health-pal-uit/health-pal-server-sub001/utils"
)

type ProfileInput struct {
	FullName string  `json:"full_name"`
	Birthday string  `json:"birthday"` // sent as YYYY-MM-DD
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"birthday":  user.Birthday.Format("2006-01-02"),
		"age":       age,
		"height_cm": user.HeightCm,
		"weight_kg": user.WeightKg,
	}
	if bmi, category, err := utils.BMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = category
	}
	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}

	return config.DB.Save(&user).Error
}

// GetUserWeight returns the profile body weight in kilograms, 0 if unset.
func GetUserWeight(userID uint) (float64, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return 0, errors.New("user not found")
	}
	return user.WeightKg, nil
}

// GetUserAge returns the age in whole years, 0 when no birthday is set.
func GetUserAge(userID uint) (int, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return 0, errors.New("user not found")
	}
	if user.Birthday.IsZero() {
		return 0, nil
	}
	return utils.CalculateAge(user.Birthday), nil
}
