package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Merchant{}, &models.Order{}, &models.Payment{}))
	config.DB = db
	return db
}

func seedTestMerchant(t *testing.T, db *gorm.DB, email string) models.Merchant {
	merchant := models.Merchant{
		Email:     email,
		APIKey:    "key_" + email,
		APISecret: "hashed_" + email,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&merchant).Error)
	return merchant
}

func seedTestOrder(t *testing.T, db *gorm.DB, merchantID uint, amount int64) models.Order {
	id, err := utils.GenerateID(utils.OrderIDPrefix)
	require.NoError(t, err)
	order := models.Order{
		ID:         id,
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   "INR",
		Receipt:    "rcpt_1",
		Status:     models.OrderStatusCreated,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func mustID(t *testing.T) string {
	id, err := utils.GenerateID(utils.PaymentIDPrefix)
	require.NoError(t, err)
	return id
}

// asMerchant injects the merchant into the request context the way the auth
// middleware does.
func asMerchant(merchant models.Merchant) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("merchant", merchant)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
