package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetTodayLedger returns today's ledger, creating a zeroed one on first call.
func GetTodayLedger(c *gin.Context) {
	uid := c.GetUint("userID")
	ledger, err := ledgerSvc.GetOrCreate(uid, time.Now())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// GetLedgerByDate returns the ledger for ?date=YYYY-MM-DD without creating one.
func GetLedgerByDate(c *gin.Context) {
	uid := c.GetUint("userID")
	date, ok := parseDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ledger, err := ledgerSvc.GetByDate(uid, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

func GetLedgerHistory(c *gin.Context) {
	uid := c.GetUint("userID")
	history, err := ledgerSvc.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
