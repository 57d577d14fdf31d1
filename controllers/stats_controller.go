package controllers

import (
	"math"
	"net/http"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
)

// GET /api/v1/stats
//
// Dashboard aggregates over the payment store. Pure reporting; not part of
// the payment state machine.
func GetStats(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Payment{}).Count(&count).Error; err != nil {
		utils.LogError("Failed to count payments: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	var success struct {
		Count int64
		Total int64
	}
	err := config.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusSuccess).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Scan(&success).Error
	if err != nil {
		utils.LogError("Failed to aggregate successful payments: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	successRate := 0
	if count > 0 {
		successRate = int(math.Round(float64(success.Count) / float64(count) * 100))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       count,
		"totalAmount": success.Total,
		"successRate": successRate,
	})
}

// GET /api/v1/transactions
//
// The 100 most recent payments, newest first.
func GetTransactions(c *gin.Context) {
	var payments []models.Payment
	err := config.DB.Order("created_at DESC").Limit(100).Find(&payments).Error
	if err != nil {
		utils.LogError("Failed to list transactions: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, payments)
}
