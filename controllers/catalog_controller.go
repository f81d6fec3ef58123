package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

type IngredientInput struct {
	Name    string               `json:"name" binding:"required"`
	Per100g models.NutritionFact `json:"per_100g"`
}

func CreateIngredient(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing := models.Ingredient{Name: input.Name, Per100g: input.Per100g}
	if err := catalogSvc.CreateIngredient(&ing); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func ListIngredients(c *gin.Context) {
	out, err := catalogSvc.ListIngredients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetIngredient(c *gin.Context) {
	id := paramUint(c, "id")
	ing, err := catalogSvc.GetIngredient(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ing)
}

type MealInput struct {
	Name           string               `json:"name" binding:"required"`
	ServingWeightG float64              `json:"serving_weight_g" binding:"required"`
	Per100g        models.NutritionFact `json:"per_100g"`
}

func CreateMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal := models.Meal{Name: input.Name, ServingWeightG: input.ServingWeightG, Per100g: input.Per100g}
	if err := catalogSvc.CreateMeal(&meal); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	out, err := catalogSvc.ListMeals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetMeal(c *gin.Context) {
	id := paramUint(c, "id")
	meal, err := catalogSvc.GetMeal(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

type ActivityInput struct {
	Name         string  `json:"name" binding:"required"`
	METValue     float64 `json:"met_value" binding:"required"`
	SupportsRep  bool    `json:"supports_rep"`
	SupportsHour bool    `json:"supports_hour"`
	Category     string  `json:"category"`
}

func CreateActivity(c *gin.Context) {
	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	act := models.Activity{
		Name:         input.Name,
		METValue:     input.METValue,
		SupportsRep:  input.SupportsRep,
		SupportsHour: input.SupportsHour,
		Category:     input.Category,
	}
	if err := catalogSvc.CreateActivity(&act); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, act)
}

func ListActivities(c *gin.Context) {
	out, err := catalogSvc.ListActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(v)
}
