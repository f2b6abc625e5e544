package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"walletwave.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	merchantHandler       *handlers.MerchantHandler
	paymentRequestHandler *handlers.PaymentRequestHandler
	settlementHandler     *handlers.SettlementHandler
	settingsHandler       *handlers.SettingsHandler
	tokenHandler          *handlers.TokenHandler
}

func applyCORSMiddleware(r *gin.Engine) {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Wallet-Address", "X-Request-ID")
	r.Use(cors.New(cfg))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Merchant onboarding and gating
		merchants := v1.Group("/merchants")
		{
			merchants.GET("/status", d.merchantHandler.GetStatus)
			merchants.POST("/register", d.merchantHandler.Register)
		}

		// Merchant-side payment links
		requests := v1.Group("/requests")
		{
			requests.POST("", d.paymentRequestHandler.Create)
			requests.GET("", d.paymentRequestHandler.List)
			requests.POST("/:id/copied", d.paymentRequestHandler.MarkCopied)
		}

		// Customer-facing payment page (public read, settlement needs a
		// wallet session)
		v1.GET("/pay", d.settlementHandler.View)
		v1.GET("/pay/:id", d.settlementHandler.View)
		v1.POST("/pay/:id", d.settlementHandler.Settle)

		// Session preferences
		settings := v1.Group("/settings")
		{
			settings.GET("", d.settingsHandler.Get)
			settings.PUT("", d.settingsHandler.Update)
		}

		// Accepted tokens with display-only prices
		tokens := v1.Group("/tokens")
		{
			tokens.GET("", d.tokenHandler.List)
			tokens.GET("/:symbol/price", d.tokenHandler.GetPrice)
		}
	}
}
