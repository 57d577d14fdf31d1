package routes

import (
	"github.com/arjun-pixel/payforge/controllers"
	"github.com/arjun-pixel/payforge/middleware"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", controllers.HealthCheck)

	api := router.Group("/api/v1")
	{
		api.GET("/test/merchant", controllers.GetTestMerchant)

		// Dashboard aggregates
		api.GET("/stats", controllers.GetStats)
		api.GET("/transactions", controllers.GetTransactions)
		api.GET("/transactions/export/excel", controllers.DownloadTransactionsExcel)
		api.GET("/transactions/export/pdf", controllers.DownloadTransactionsPDF)

		// Hosted checkout surface (no credentials; merchant is resolved
		// server-side from the order)
		api.GET("/orders/:id/public", controllers.GetPublicOrder)
		api.POST("/payments/public", controllers.CreatePublicPayment)
		api.GET("/payments/:id/public", controllers.GetPublicPayment)

		// Merchant API
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/orders", controllers.CreateOrder)
			protected.GET("/orders/:id", controllers.GetOrder)
			protected.POST("/payments", controllers.CreatePayment)
			protected.GET("/payments/:id", controllers.GetPayment)
		}
	}

	return router
}
