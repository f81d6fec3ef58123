package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/health-pal-uit/health-pal-server-sub001/services"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	profile, err := services.GetUserProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(uid, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
