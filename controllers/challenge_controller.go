package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/models"
)

type ChallengeInput struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	StartDate   time.Time              `json:"start_date" binding:"required"`
	EndDate     time.Time              `json:"end_date" binding:"required"`
	Target      models.ChallengeTarget `json:"target"`
}

func CreateChallenge(c *gin.Context) {
	var input ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ch := models.Challenge{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Target:      input.Target,
	}
	if err := challengeSvc.Create(&ch); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ch)
}

func ListChallenges(c *gin.Context) {
	out, err := challengeSvc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func JoinChallenge(c *gin.Context) {
	uid := c.GetUint("userID")
	p, err := challengeSvc.Join(paramUint(c, "id"), uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetChallengeProgress scores the caller's progress on demand and returns
// the stored participant percent.
func GetChallengeProgress(c *gin.Context) {
	uid := c.GetUint("userID")
	pct, err := challengeSvc.Score(paramUint(c, "id"), uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"percent": pct})
}
