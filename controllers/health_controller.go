package controllers

import (
	"net/http"
	"time"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
)

// GET /health
func HealthCheck(c *gin.Context) {
	var one int
	if err := config.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /api/v1/test/merchant
//
// Exposes the seeded test merchant so the dashboard and demo scripts can
// bootstrap without manual setup. The secret is never returned.
func GetTestMerchant(c *gin.Context) {
	var merchant models.Merchant
	if err := config.DB.Where("email = ?", config.TestMerchantEmail).First(&merchant).Error; err != nil {
		utils.LogError("Test merchant not found: %v", err)
		utils.NotFound(c, "Test merchant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      merchant.ID,
		"email":   merchant.Email,
		"api_key": merchant.APIKey,
		"seeded":  true,
	})
}
