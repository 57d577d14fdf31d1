package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusCreated = "created"
)

// MinOrderAmount is the smallest accepted order amount in the smallest
// currency unit (100 = 1.00 in the major unit).
const MinOrderAmount = 100

type Order struct {
	ID         string                 `gorm:"primaryKey;size:64" json:"id"`
	MerchantID uint                   `gorm:"index;not null" json:"merchant_id"`
	Merchant   Merchant               `gorm:"foreignKey:MerchantID" json:"-"`
	Amount     int64                  `gorm:"not null" json:"amount"`
	Currency   string                 `gorm:"size:8;default:'INR'" json:"currency"`
	Receipt    string                 `json:"receipt"`
	Notes      map[string]interface{} `gorm:"serializer:json" json:"notes"`
	Status     string                 `gorm:"size:16;default:'created'" json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// PublicOrder is the merchant-safe projection served to the hosted checkout
// page without authentication.
type PublicOrder struct {
	ID         string `json:"id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	MerchantID uint   `json:"merchant_id"`
}

// Public returns the checkout-safe subset of the order.
func (o *Order) Public() PublicOrder {
	return PublicOrder{
		ID:         o.ID,
		Amount:     o.Amount,
		Currency:   o.Currency,
		Receipt:    o.Receipt,
		Status:     o.Status,
		MerchantID: o.MerchantID,
	}
}
