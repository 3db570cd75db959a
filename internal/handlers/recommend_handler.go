package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"storefront-assistant-service/internal/models"
	"storefront-assistant-service/internal/recommend"
)

type RecommendationsHandler struct {
	recommender *recommend.Recommender
}

func NewRecommendationsHandler(recommender *recommend.Recommender) *RecommendationsHandler {
	return &RecommendationsHandler{recommender: recommender}
}

// GetRecommendations returns products compatible with a style analysis
// @Summary Get recommendations
// @Description Pick catalog items compatible with face shape and skin tone attributes
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "Style analysis attributes"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationsHandler) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Success: true,
		Data:    h.recommender.ForAnalysis(req),
	})
}
