package main

import (
	"log"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/controllers"
	"github.com/arjun-pixel/payforge/routes"
	"github.com/arjun-pixel/payforge/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the well-known test merchant
	if err := config.SeedTestMerchant(); err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		log.Fatal("Failed to seed test merchant:", err)
	}

	// Wire the processing simulator from config
	if cfg.TestMode {
		utils.LogInfo("Processing simulator in test mode (success=%v delay=%v)", cfg.TestPaymentSuccess, cfg.TestPaymentDelay)
		controllers.Processor = utils.NewTestSimulator(cfg.TestPaymentSuccess, cfg.TestPaymentDelay)
	} else {
		controllers.Processor = utils.NewSimulator()
	}

	// Set up router (global middleware is attached inside)
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
