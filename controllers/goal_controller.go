package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/services"
)

// UpdateGoals sets or replaces the caller's daily targets.
func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var in services.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := goalSvc.Upsert(userID, in)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetGoals returns the caller's current targets.
func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := goalSvc.Get(userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetGoalProgress scores one day's ledger against the caller's targets.
// ?date=YYYY-MM-DD, defaults to today.
func GetGoalProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	date, ok := parseDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	goal, progress, err := goalSvc.Progress(userID, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     services.DateOnly(date).Format("2006-01-02"),
		"goals":    goal,
		"progress": progress,
	})
}
