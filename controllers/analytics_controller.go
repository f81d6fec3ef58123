package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetRangeSummary averages the caller's ledgers over ?from/?to (YYYY-MM-DD),
// defaulting to the current calendar month.
// ?include_missing_days=true counts unlogged days as zeros.
func GetRangeSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	from, ok := parseDate(c.DefaultQuery("from", first.Format("2006-01-02")))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, use YYYY-MM-DD"})
		return
	}
	to, ok := parseDate(c.DefaultQuery("to", last.Format("2006-01-02")))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, use YYYY-MM-DD"})
		return
	}
	includeMissing := c.DefaultQuery("include_missing_days", "false") == "true"

	out, err := summarySvc.Summary(c.Request.Context(), userID, from, to, includeMissing)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetWeeklyOverview renders seven days starting at ?week_start (snapped back
// to Monday, defaults to the current week). ?mode=chart|detailed.
func GetWeeklyOverview(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart := startOfWeek(time.Now().UTC())
	if v := c.Query("week_start"); v != "" {
		ws, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start, use YYYY-MM-DD"})
			return
		}
		weekStart = startOfWeek(ws)
	}
	mode := c.DefaultQuery("mode", "detailed")

	out, err := summarySvc.Weekly(c.Request.Context(), userID, weekStart, mode)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// startOfWeek snaps to the preceding (or same) Monday.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return tt.AddDate(0, 0, -(wd - 1))
}
