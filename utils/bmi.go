package utils

import "errors"

// BMI computes body mass index from height in centimeters and weight in
// kilograms, plus its WHO category. Implausible inputs are rejected rather
// than producing a garbage index.
func BMI(heightCm, weightKg float64) (float64, string, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, "", errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, "", errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	bmi := weightKg / (h * h)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25.0:
		category = "Normal weight"
	case bmi < 30.0:
		category = "Overweight"
	case bmi < 35.0:
		category = "Obesity class I"
	case bmi < 40.0:
		category = "Obesity class II"
	default:
		category = "Obesity class III"
	}
	return bmi, category, nil
}
