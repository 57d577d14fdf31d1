package controllers

import (
	"math"
	"net/http"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentMerchant pulls the merchant resolved by the auth middleware.
func currentMerchant(c *gin.Context) (models.Merchant, bool) {
	merchantVal, exists := c.Get("merchant")
	if !exists {
		return models.Merchant{}, false
	}
	merchant, ok := merchantVal.(models.Merchant)
	return merchant, ok
}

// POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")
	merchant, ok := currentMerchant(c)
	if !ok {
		utils.LogError("Merchant not found in context")
		utils.AuthenticationError(c, "Invalid API credentials")
		return
	}

	var req struct {
		Amount   *float64               `json:"amount"`
		Currency string                 `json:"currency"`
		Receipt  string                 `json:"receipt"`
		Notes    map[string]interface{} `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request from merchant %d: %v", merchant.ID, err)
		utils.BadRequest(c, "Invalid request body")
		return
	}

	// Amount must be an integer in the smallest currency unit, at least 100.
	if req.Amount == nil || *req.Amount != math.Trunc(*req.Amount) || *req.Amount < models.MinOrderAmount {
		utils.LogError("Rejected order amount %v from merchant %d", req.Amount, merchant.ID)
		utils.BadRequest(c, "amount must be at least 100")
		return
	}

	if req.Currency == "" {
		req.Currency = "INR"
	}

	orderID, err := utils.GenerateID(utils.OrderIDPrefix)
	if err != nil {
		utils.LogError("Failed to generate order id: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	order := models.Order{
		ID:         orderID,
		MerchantID: merchant.ID,
		Amount:     int64(*req.Amount),
		Currency:   req.Currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
		Status:     models.OrderStatusCreated,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for merchant %d: %v", merchant.ID, err)
		utils.ServerError(c, "Internal server error")
		return
	}

	utils.LogInfo("Created order %s for merchant %d", order.ID, merchant.ID)
	c.JSON(http.StatusCreated, order)
}

// GET /api/v1/orders/:id
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")
	merchant, ok := currentMerchant(c)
	if !ok {
		utils.LogError("Merchant not found in context")
		utils.AuthenticationError(c, "Invalid API credentials")
		return
	}

	id := c.Param("id")
	var order models.Order
	// Cross-merchant lookups answer 404 rather than leaking existence.
	err := config.DB.Where("id = ? AND merchant_id = ?", id, merchant.ID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.LogError("Order not found: %s (merchant %d)", id, merchant.ID)
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed for %s: %v", id, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/v1/orders/:id/public
func GetPublicOrder(c *gin.Context) {
	id := c.Param("id")
	var order models.Order
	err := config.DB.Where("id = ?", id).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Public order lookup failed for %s: %v", id, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, order.Public())
}
