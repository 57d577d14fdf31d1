package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	// Processing simulator knobs. TestMode pins the delay and outcome so
	// integration suites get deterministic settlements.
	TestMode           bool
	TestPaymentSuccess bool
	TestPaymentDelay   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env is fine in containerized deploys where the
	// environment is injected directly.
	_ = godotenv.Load()

	config := &Config{
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		Port:               os.Getenv("PORT"),
		Env:                os.Getenv("ENV"),
		TestMode:           os.Getenv("TEST_MODE") == "true",
		TestPaymentSuccess: os.Getenv("TEST_PAYMENT_SUCCESS") != "false",
		TestPaymentDelay:   1000 * time.Millisecond,
	}

	if raw := os.Getenv("TEST_PAYMENT_DELAY"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			config.TestPaymentDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if config.Port == "" {
		config.Port = "8000"
	}

	return config, nil
}
