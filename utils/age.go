package utils

import "time"

// CalculateAge returns whole years since birthday, accounting for whether
// the birthday has passed this year.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
