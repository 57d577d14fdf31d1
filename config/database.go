package config

import (
	"fmt"

	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Test merchant credentials seeded at boot so the dashboard and checkout
// demos work against a fresh database.
const (
	TestMerchantEmail  = "test@example.com"
	TestMerchantKey    = "key_test_abc123"
	TestMerchantSecret = "secret_test_abc123"
)

// InitDB initializes the database connection and migrates the schema.
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Merchant{},
		&models.Order{},
		&models.Payment{},
	); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// SeedTestMerchant idempotently ensures the well-known test merchant exists.
// The API secret is stored as a bcrypt hash; the plaintext is only ever
// exchanged over the auth headers.
func SeedTestMerchant() error {
	var merchant models.Merchant
	err := DB.Where("email = ?", TestMerchantEmail).First(&merchant).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := utils.HashSecret(TestMerchantSecret)
	if err != nil {
		return err
	}

	merchant = models.Merchant{
		Email:     TestMerchantEmail,
		APIKey:    TestMerchantKey,
		APISecret: hash,
		IsActive:  true,
	}
	return DB.Create(&merchant).Error
}
