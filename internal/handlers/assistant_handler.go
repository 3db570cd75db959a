package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"storefront-assistant-service/internal/assistant"
	"storefront-assistant-service/internal/events"
	"storefront-assistant-service/internal/middleware"
	"storefront-assistant-service/internal/models"
)

type AssistantHandler struct {
	router    *assistant.Router
	publisher *events.Publisher
}

// NewAssistantHandler wires the intent router and an optional analytics
// publisher (nil when NATS is not configured).
func NewAssistantHandler(router *assistant.Router, publisher *events.Publisher) *AssistantHandler {
	return &AssistantHandler{router: router, publisher: publisher}
}

// Chat processes one user message and replies with text plus products
// @Summary Chat with the shopping assistant
// @Description Classify a free-text message, extract filters and return matching products
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "User message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
				Field:   "message",
			},
		})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Message must not be empty",
				Field:   "message",
			},
		})
		return
	}

	reply := h.router.ProcessMessage(req.Message)

	if h.publisher != nil {
		intent := h.router.Classify(req.Message)
		criteria := h.router.ExtractCriteria(strings.ToLower(req.Message))
		h.publisher.PublishAssistantQuery(events.AssistantQueryEvent{
			SessionID:   middleware.GetSessionID(c),
			Intent:      string(intent),
			Query:       criteria.Query,
			Gender:      criteria.Gender,
			Category:    criteria.Category,
			MinPrice:    criteria.MinPrice,
			MaxPrice:    criteria.MaxPrice,
			ResultCount: len(reply.Products),
		})
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Success: true,
		Data: &models.ChatMessage{
			ID:       uuid.New().String(),
			Sender:   models.SenderBot,
			Text:     reply.Text,
			Products: reply.Products,
		},
	})
}
