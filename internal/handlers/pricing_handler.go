package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/models"
	"storefront-assistant-service/internal/pricing"
)

type PricingHandler struct {
	catalog    *catalog.Service
	comparator *pricing.Comparator
}

func NewPricingHandler(cat *catalog.Service, comparator *pricing.Comparator) *PricingHandler {
	return &PricingHandler{catalog: cat, comparator: comparator}
}

// GetPriceComparison returns simulated cross-platform prices for a product
// @Summary Price comparison
// @Description Get simulated cross-platform price comparisons for a product
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.PriceComparisonResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/price-comparison [get]
func (h *PricingHandler) GetPriceComparison(c *gin.Context) {
	product := h.catalog.ProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Product not found",
			},
		})
		return
	}

	comparisons, cached := h.comparator.Compare(c.Request.Context(), *product)
	c.JSON(http.StatusOK, models.PriceComparisonResponse{
		Success: true,
		Data:    comparisons,
		Cached:  cached,
	})
}
