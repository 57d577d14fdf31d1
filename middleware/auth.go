package middleware

import (
	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MerchantContextKey is where the resolved merchant is stored on the request
// context.
const MerchantContextKey = "merchant"

// AuthMiddleware resolves the X-Api-Key/X-Api-Secret header pair to an
// active merchant and aborts with AUTHENTICATION_ERROR otherwise. Every
// merchant-scoped route runs behind this gate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		apiSecret := c.GetHeader("X-Api-Secret")

		if apiKey == "" || apiSecret == "" {
			utils.LogError("Missing API credential headers")
			utils.AuthenticationError(c, "Invalid API credentials")
			c.Abort()
			return
		}

		var merchant models.Merchant
		if err := config.DB.Where("api_key = ?", apiKey).First(&merchant).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.LogError("No merchant for api key: %s", apiKey)
				utils.AuthenticationError(c, "Invalid API credentials")
			} else {
				utils.LogError("Merchant lookup failed: %v", err)
				utils.ServerError(c, "Authentication failed")
			}
			c.Abort()
			return
		}

		if !utils.CheckSecretHash(apiSecret, merchant.APISecret) {
			utils.LogError("API secret mismatch for merchant %d", merchant.ID)
			utils.AuthenticationError(c, "Invalid API credentials")
			c.Abort()
			return
		}

		if !merchant.IsActive {
			utils.LogError("Inactive merchant attempted access: %d", merchant.ID)
			utils.AuthenticationError(c, "Invalid API credentials")
			c.Abort()
			return
		}

		c.Set(MerchantContextKey, merchant)
		utils.LogDebug("Merchant %d authenticated", merchant.ID)
		c.Next()
	}
}
