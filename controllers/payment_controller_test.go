package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upiRequest(orderID string) gin.H {
	return gin.H{"order_id": orderID, "method": "upi", "vpa": "customer@upi"}
}

func cardRequestBody(orderID, number string) gin.H {
	return gin.H{
		"order_id": orderID,
		"method":   "card",
		"card": gin.H{
			"number":       number,
			"expiry_month": "12",
			"expiry_year":  "99",
			"cvv":          "123",
			"holder_name":  "Test Customer",
		},
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	db := setupTestDB(t)
	merchant := seedTestMerchant(t, db, "payments@example.com")
	order := seedTestOrder(t, db, merchant.ID, 2000)

	Processor = utils.NewTestSimulator(true, time.Millisecond)

	router := gin.New()
	router.POST("/api/v1/payments", asMerchant(merchant), CreatePayment)

	t.Run("nonexistent order upi", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", upiRequest("order_missing00000000"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeNotFoundError)
	})

	t.Run("nonexistent order card", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", cardRequestBody("order_missing00000000", "4111111111111111"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cross merchant order", func(t *testing.T) {
		other := seedTestMerchant(t, db, "intruded@example.com")
		foreign := seedTestOrder(t, db, other.ID, 3000)
		w := performJSON(router, "POST", "/api/v1/payments", upiRequest(foreign.ID))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid vpa", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", gin.H{
			"order_id": order.ID, "method": "upi", "vpa": "not-a-vpa",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeInvalidVPA)
	})

	t.Run("missing vpa", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", gin.H{
			"order_id": order.ID, "method": "upi",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeInvalidVPA)
	})

	t.Run("missing card details", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", gin.H{
			"order_id": order.ID, "method": "card",
			"card": gin.H{"number": "4111111111111111"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeBadRequestError)
	})

	t.Run("luhn failure", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", cardRequestBody(order.ID, "4111111111111112"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeInvalidCard)
	})

	t.Run("expired card", func(t *testing.T) {
		body := cardRequestBody(order.ID, "4111111111111111")
		body["card"].(gin.H)["expiry_month"] = "1"
		body["card"].(gin.H)["expiry_year"] = "20"
		w := performJSON(router, "POST", "/api/v1/payments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeExpiredCard)
	})

	t.Run("unknown method", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments", gin.H{
			"order_id": order.ID, "method": "wallet",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeBadRequestError)
	})

	t.Run("rejected payloads persist nothing", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestCreatePaymentSettlement(t *testing.T) {
	db := setupTestDB(t)
	merchant := seedTestMerchant(t, db, "settle@example.com")

	router := gin.New()
	router.POST("/api/v1/payments", asMerchant(merchant), CreatePayment)

	t.Run("upi success carries terminal status", func(t *testing.T) {
		order := seedTestOrder(t, db, merchant.ID, 2000)
		Processor = utils.NewTestSimulator(true, 10*time.Millisecond)

		start := time.Now()
		w := performJSON(router, "POST", "/api/v1/payments", upiRequest(order.ID))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])
		assert.Contains(t, body["id"], "pay_")
		assert.Equal(t, order.ID, body["order_id"])
		assert.Equal(t, float64(2000), body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "customer@upi", body["vpa"])
		assert.NotContains(t, body, "error_code")
	})

	t.Run("forced failure terminates in failed", func(t *testing.T) {
		order := seedTestOrder(t, db, merchant.ID, 2000)
		Processor = utils.NewTestSimulator(false, 10*time.Millisecond)

		w := performJSON(router, "POST", "/api/v1/payments", upiRequest(order.ID))
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "failed", body["status"])
		assert.Equal(t, "PAYMENT_FAILED", body["error_code"])
		assert.Equal(t, "Transaction failed", body["error_description"])
		assert.NotEqual(t, "processing", body["status"])

		var stored models.Payment
		require.NoError(t, db.Where("id = ?", body["id"]).First(&stored).Error)
		assert.Equal(t, models.PaymentStatusFailed, stored.Status)
		assert.True(t, stored.Terminal())
	})

	t.Run("card payment stores network and last4 only", func(t *testing.T) {
		order := seedTestOrder(t, db, merchant.ID, 5000)
		Processor = utils.NewTestSimulator(true, time.Millisecond)

		w := performJSON(router, "POST", "/api/v1/payments", cardRequestBody(order.ID, "4111 1111 1111 1111"))
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "visa", body["card_network"])
		assert.Equal(t, "1111", body["card_last4"])
		assert.NotContains(t, w.Body.String(), "4111111111111111")
		assert.NotContains(t, w.Body.String(), "cvv")

		var stored models.Payment
		require.NoError(t, db.Where("id = ?", body["id"]).First(&stored).Error)
		assert.Equal(t, "visa", stored.CardNetwork)
		assert.Equal(t, "1111", stored.CardLast4)
	})

	t.Run("amount copied from order not request", func(t *testing.T) {
		order := seedTestOrder(t, db, merchant.ID, 4200)
		Processor = utils.NewTestSimulator(true, time.Millisecond)

		body := upiRequest(order.ID)
		body["amount"] = 1 // ignored
		w := performJSON(router, "POST", "/api/v1/payments", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(4200), decodeBody(t, w)["amount"])
	})
}

func TestCreatePublicPayment(t *testing.T) {
	db := setupTestDB(t)
	merchant := seedTestMerchant(t, db, "checkout@example.com")
	order := seedTestOrder(t, db, merchant.ID, 9900)
	Processor = utils.NewTestSimulator(true, time.Millisecond)

	router := gin.New()
	router.POST("/api/v1/payments/public", CreatePublicPayment)

	t.Run("merchant resolved from order", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments/public", upiRequest(order.ID))
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(merchant.ID), body["merchant_id"])
	})

	t.Run("unknown order", func(t *testing.T) {
		w := performJSON(router, "POST", "/api/v1/payments/public", upiRequest("order_missing00000000"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetPayment(t *testing.T) {
	db := setupTestDB(t)
	merchant := seedTestMerchant(t, db, "poll@example.com")
	order := seedTestOrder(t, db, merchant.ID, 2000)
	Processor = utils.NewTestSimulator(true, time.Millisecond)

	router := gin.New()
	router.POST("/api/v1/payments", asMerchant(merchant), CreatePayment)
	router.GET("/api/v1/payments/:id", asMerchant(merchant), GetPayment)
	router.GET("/api/v1/payments/:id/public", GetPublicPayment)

	created := performJSON(router, "POST", "/api/v1/payments", upiRequest(order.ID))
	require.Equal(t, http.StatusCreated, created.Code)
	paymentID := decodeBody(t, created)["id"].(string)

	t.Run("terminal record is stable across reads", func(t *testing.T) {
		first := performJSON(router, "GET", "/api/v1/payments/"+paymentID, nil)
		second := performJSON(router, "GET", "/api/v1/payments/"+paymentID, nil)
		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("public poll sees same record", func(t *testing.T) {
		w := performJSON(router, "GET", "/api/v1/payments/"+paymentID+"/public", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, paymentID, decodeBody(t, w)["id"])
	})

	t.Run("unknown payment", func(t *testing.T) {
		w := performJSON(router, "GET", "/api/v1/payments/pay_missing123456789", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), utils.CodeNotFoundError)
	})

	t.Run("cross merchant payment is hidden", func(t *testing.T) {
		other := seedTestMerchant(t, db, "outsider@example.com")
		otherRouter := gin.New()
		otherRouter.GET("/api/v1/payments/:id", asMerchant(other), GetPayment)

		w := performJSON(otherRouter, "GET", "/api/v1/payments/"+paymentID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
