package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/services"
)

type LogActivityInput struct {
	ActivityID      uint    `json:"activity_id" binding:"required"`
	PerformedAt     string  `json:"performed_at"` // RFC3339, defaults to now
	DurationMinutes float64 `json:"duration_minutes"`
	Reps            int     `json:"reps"`
	IntensityLevel  int     `json:"intensity_level"`
	WeightKg        float64 `json:"weight_kg"`
}

func LogActivity(c *gin.Context) {
	uid := c.GetUint("userID")
	var input LogActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var performedAt time.Time
	if input.PerformedAt != "" {
		t, err := time.Parse(time.RFC3339, input.PerformedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "performed_at must be RFC3339"})
			return
		}
		performedAt = t
	}

	rec, err := activitySvc.LogActivity(uid, services.ActivityLogRequest{
		ActivityID:      input.ActivityID,
		PerformedAt:     performedAt,
		DurationMinutes: input.DurationMinutes,
		Reps:            input.Reps,
		IntensityLevel:  input.IntensityLevel,
		WeightKg:        input.WeightKg,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func ListActivityRecords(c *gin.Context) {
	uid := c.GetUint("userID")
	recs, err := activitySvc.ListActivityRecords(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func DeleteActivityRecord(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := activitySvc.DeleteActivityRecord(uid, paramUint(c, "id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
