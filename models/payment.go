package models

import (
	"time"
)

// Payment status constants. A payment is created in processing and makes
// exactly one transition to a terminal status.
const (
	PaymentStatusProcessing = "processing"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
)

// Payment method constants
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
)

// ErrorCodePaymentFailed is persisted on payments declined by the processor.
const ErrorCodePaymentFailed = "PAYMENT_FAILED"

type Payment struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	OrderID          string    `gorm:"index;size:64;not null" json:"order_id"`
	MerchantID       uint      `gorm:"index;not null" json:"merchant_id"`
	Amount           int64     `gorm:"not null" json:"amount"`
	Currency         string    `gorm:"size:8" json:"currency"`
	Method           string    `gorm:"size:8;not null" json:"method"`
	Status           string    `gorm:"size:16;not null" json:"status"`
	VPA              string    `gorm:"column:vpa" json:"vpa,omitempty"`
	CardNetwork      string    `json:"card_network,omitempty"`
	CardLast4        string    `gorm:"column:card_last4;size:4" json:"card_last4,omitempty"`
	ErrorCode        string    `json:"error_code,omitempty"`
	ErrorDescription string    `json:"error_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Terminal reports whether the payment has reached its final status.
func (p *Payment) Terminal() bool {
	return p.Status == PaymentStatusSuccess || p.Status == PaymentStatusFailed
}
