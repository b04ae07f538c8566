// internal/api/handlers/pricing_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshmart/dynamic-pricing/internal/domain"
	"github.com/freshmart/dynamic-pricing/internal/pricing"
)

// Version reported by the health endpoint.
const apiVersion = "1.0.0"

type PricingHandler struct {
	engine *pricing.Engine
}

func NewPricingHandler(engine *pricing.Engine) *PricingHandler {
	return &PricingHandler{engine: engine}
}

// Health reports service liveness and the active pricing mode.
func (h *PricingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dynamic Pricing API is running",
		"version": apiVersion,
		"mode":    h.engine.Mode(),
	})
}

// GetAllProducts returns every product with its dynamic price.
func (h *PricingHandler) GetAllProducts(c *gin.Context) {
	products, err := h.engine.PriceAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product with pricing detail.
func (h *PricingHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id must be an integer"})
		return
	}

	detail, err := h.engine.PriceProduct(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %d not found", id)})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetProductsByCategory returns all priced products of one category.
// The match is case-insensitive; zero matches is a 404.
func (h *PricingHandler) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := h.engine.PriceByCategory(category)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Category %s not found", category)})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetCategories lists the distinct categories, sorted.
func (h *PricingHandler) GetCategories(c *gin.Context) {
	categories := h.engine.Table().Categories()
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}

// predictRequest is the direct-prediction body. Pointer fields so that
// every feature must be present in the JSON while zero stays a legal
// value (a sold-out product has demand_ratio 0).
type predictRequest struct {
	DemandRatio    *float64 `json:"demand_ratio" binding:"required"`
	InventoryLevel *float64 `json:"inventory_level" binding:"required"`
	SalesTrend     *float64 `json:"sales_trend" binding:"required"`
	Popularity     *float64 `json:"popularity" binding:"required"`
	Scarcity       *float64 `json:"scarcity" binding:"required"`
	Day            *float64 `json:"day" binding:"required"`
}

// PredictPrice runs the trained model on caller-supplied features,
// bypassing feature derivation. Unavailable in fallback mode.
func (h *PricingHandler) PredictPrice(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feature vector", "details": err.Error()})
		return
	}

	features := domain.FeatureVector{
		DemandRatio:    *req.DemandRatio,
		InventoryLevel: *req.InventoryLevel,
		SalesTrend:     *req.SalesTrend,
		Popularity:     *req.Popularity,
		Scarcity:       *req.Scarcity,
		Day:            *req.Day,
	}

	predicted, err := h.engine.PredictRaw(features)
	if err != nil {
		if errors.Is(err, domain.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Model not loaded"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predicted_price": predicted,
		"confidence":      "high",
	})
}

// GetInsights returns the whole-dataset analytics rollup.
func (h *PricingHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Insights())
}

func (h *PricingHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
