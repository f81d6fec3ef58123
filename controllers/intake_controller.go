package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate accepts YYYY-MM-DD; an empty string means today.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), true
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

type LogIngredientInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	QuantityKg   float64 `json:"quantity_kg" binding:"required"`
	Date         string  `json:"date"` // YYYY-MM-DD, defaults to today
}

func LogIngredient(c *gin.Context) {
	uid := c.GetUint("userID")
	var input LogIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry, err := intakeSvc.LogIngredient(uid, input.IngredientID, date, input.QuantityKg)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type LogMealInput struct {
	MealID   uint    `json:"meal_id" binding:"required"`
	Servings float64 `json:"servings" binding:"required"`
	Date     string  `json:"date"`
}

func LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry, err := intakeSvc.LogMeal(uid, input.MealID, date, input.Servings)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type LogWaterInput struct {
	Liters float64 `json:"liters"`
	Date   string  `json:"date"`
}

func LogWater(c *gin.Context) {
	uid := c.GetUint("userID")
	var input LogWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseDate(input.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ledger, err := ledgerSvc.SetWater(uid, date, input.Liters)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

func DeleteLoggedIngredient(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := intakeSvc.DeleteLoggedIngredient(uid, paramUint(c, "id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteLoggedMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := intakeSvc.DeleteLoggedMeal(uid, paramUint(c, "id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
