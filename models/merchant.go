package models

import (
	"time"
)

// Merchant represents an API consumer of the gateway. Records are seeded at
// boot and never mutated by the request surface.
type Merchant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	APIKey    string    `gorm:"column:api_key;uniqueIndex;not null" json:"api_key"`
	APISecret string    `gorm:"column:api_secret;not null" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
