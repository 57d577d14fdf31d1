package controllers

import (
	"net/http"
	"strconv"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Processor decides payment outcomes. main wires it from config; tests swap
// in a deterministic simulator.
var Processor = utils.NewSimulator()

type cardRequest struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type paymentRequest struct {
	OrderID string       `json:"order_id"`
	Method  string       `json:"method"`
	VPA     string       `json:"vpa"`
	Card    *cardRequest `json:"card"`
}

// POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	utils.LogInfo("CreatePayment called")
	merchant, ok := currentMerchant(c)
	if !ok {
		utils.LogError("Merchant not found in context")
		utils.AuthenticationError(c, "Invalid API credentials")
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request from merchant %d: %v", merchant.ID, err)
		utils.BadRequest(c, "Invalid request body")
		return
	}

	processPayment(c, req, merchant.ID)
}

// POST /api/v1/payments/public
//
// The hosted checkout page is unauthenticated; the owning merchant is
// resolved server-side from the order so cross-merchant payments cannot be
// forged.
func CreatePublicPayment(c *gin.Context) {
	utils.LogInfo("CreatePublicPayment called")

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid public payment request: %v", err)
		utils.BadRequest(c, "Invalid request body")
		return
	}

	var order models.Order
	err := config.DB.Select("merchant_id").Where("id = ?", req.OrderID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.LogError("Public payment for unknown order: %s", req.OrderID)
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed for %s: %v", req.OrderID, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}

	processPayment(c, req, order.MerchantID)
}

// processPayment runs the shared pipeline: load and verify the order,
// validate the method payload, persist a processing row, wait on the
// simulator, persist the terminal outcome and return it.
func processPayment(c *gin.Context, req paymentRequest, merchantID uint) {
	var order models.Order
	err := config.DB.Where("id = ?", req.OrderID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.LogError("Order not found: %s", req.OrderID)
			utils.NotFound(c, "Order not found")
		} else {
			utils.LogError("Order lookup failed for %s: %v", req.OrderID, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}
	if order.MerchantID != merchantID {
		utils.LogError("Order %s does not belong to merchant %d", order.ID, merchantID)
		utils.NotFound(c, "Order not found")
		return
	}

	// Method-specific payload validation. Raw card numbers and CVVs never
	// reach storage; only the network and last four digits are kept.
	var vpa, cardNetwork, cardLast4 string
	switch req.Method {
	case models.PaymentMethodUPI:
		if req.VPA == "" || !utils.ValidateVPA(req.VPA) {
			utils.LogError("Invalid VPA for order %s", order.ID)
			utils.InvalidVPA(c, "Invalid VPA format")
			return
		}
		vpa = req.VPA
	case models.PaymentMethodCard:
		card := req.Card
		if card == nil || card.Number == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVV == "" || card.HolderName == "" {
			utils.LogError("Missing card details for order %s", order.ID)
			utils.BadRequest(c, "Missing card details")
			return
		}
		if !utils.ValidateLuhn(card.Number) {
			utils.LogError("Luhn check failed for order %s", order.ID)
			utils.InvalidCard(c, "Card validation failed")
			return
		}
		month, merr := strconv.Atoi(card.ExpiryMonth)
		year, yerr := strconv.Atoi(card.ExpiryYear)
		if merr != nil || yerr != nil || !utils.ValidateExpiry(month, year) {
			utils.LogError("Expired card for order %s", order.ID)
			utils.ExpiredCard(c, "Card expired")
			return
		}
		cleaned := utils.CleanCardNumber(card.Number)
		cardNetwork = utils.CardNetwork(cleaned)
		cardLast4 = cleaned[len(cleaned)-4:]
	default:
		utils.LogError("Invalid payment method %q for order %s", req.Method, order.ID)
		utils.BadRequest(c, "Invalid payment method")
		return
	}

	paymentID, err := utils.GenerateID(utils.PaymentIDPrefix)
	if err != nil {
		utils.LogError("Failed to generate payment id: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	payment := models.Payment{
		ID:          paymentID,
		OrderID:     order.ID,
		MerchantID:  merchantID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Method:      req.Method,
		Status:      models.PaymentStatusProcessing,
		VPA:         vpa,
		CardNetwork: cardNetwork,
		CardLast4:   cardLast4,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to create payment for order %s: %v", order.ID, err)
		utils.ServerError(c, "Internal server error")
		return
	}
	utils.LogInfo("Payment %s created in processing for order %s", payment.ID, order.ID)

	// Synchronous settlement: the response always carries the terminal
	// status, never the initial processing one.
	success := Processor.Process(req.Method)

	updates := map[string]interface{}{
		"status": models.PaymentStatusSuccess,
	}
	if !success {
		updates["status"] = models.PaymentStatusFailed
		updates["error_code"] = models.ErrorCodePaymentFailed
		updates["error_description"] = "Transaction failed"
	}
	if err := config.DB.Model(&payment).Updates(updates).Error; err != nil {
		utils.LogError("Failed to finalize payment %s: %v", payment.ID, err)
		utils.ServerError(c, "Internal server error")
		return
	}

	var finalPayment models.Payment
	if err := config.DB.Where("id = ?", payment.ID).First(&finalPayment).Error; err != nil {
		utils.LogError("Failed to reload payment %s: %v", payment.ID, err)
		utils.ServerError(c, "Internal server error")
		return
	}

	utils.LogInfo("Payment %s settled with status %s", finalPayment.ID, finalPayment.Status)
	c.JSON(http.StatusCreated, finalPayment)
}

// GET /api/v1/payments/:id
func GetPayment(c *gin.Context) {
	utils.LogInfo("GetPayment called")
	merchant, ok := currentMerchant(c)
	if !ok {
		utils.LogError("Merchant not found in context")
		utils.AuthenticationError(c, "Invalid API credentials")
		return
	}

	id := c.Param("id")
	var payment models.Payment
	err := config.DB.Where("id = ? AND merchant_id = ?", id, merchant.ID).First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.LogError("Payment not found: %s (merchant %d)", id, merchant.ID)
			utils.NotFound(c, "Payment not found")
		} else {
			utils.LogError("Payment lookup failed for %s: %v", id, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GET /api/v1/payments/:id/public
//
// Used by the checkout page to poll settlement status without credentials.
func GetPublicPayment(c *gin.Context) {
	id := c.Param("id")
	var payment models.Payment
	err := config.DB.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Payment not found")
		} else {
			utils.LogError("Public payment lookup failed for %s: %v", id, err)
			utils.ServerError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}
