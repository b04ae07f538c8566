// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/freshmart/dynamic-pricing/internal/api/handlers"
	"github.com/freshmart/dynamic-pricing/internal/api/middleware"
	"github.com/freshmart/dynamic-pricing/internal/pricing"
)

// NewRouter builds the gin engine with logging, panic recovery and
// CORS, and registers the pricing routes.
func NewRouter(engine *pricing.Engine, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// The origin list comes from config (SERVER_ALLOWED_ORIGINS, default
	// "*"); an empty list also means allow-all so the default lives in
	// one place.
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	normalized, allowAll := normalizeAllowedOrigins(allowedOrigins)
	if allowAll || len(normalized) == 0 {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		corsConfig.AllowOrigins = normalized
	}
	router.Use(cors.New(corsConfig))

	pricingHandler := handlers.NewPricingHandler(engine)

	router.GET("/", pricingHandler.Health)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/products", pricingHandler.GetAllProducts)
		apiGroup.GET("/products/:product_id", pricingHandler.GetProduct)
		apiGroup.GET("/products/category/:category", pricingHandler.GetProductsByCategory)
		apiGroup.GET("/categories", pricingHandler.GetCategories)
		apiGroup.POST("/price-prediction", pricingHandler.PredictPrice)
		apiGroup.GET("/insights", pricingHandler.GetInsights)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
