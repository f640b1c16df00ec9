package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-relay/internal/domain"
	"chat-relay/internal/service"
)

const maxFeedbackBodyBytes = 16 << 10

// FeedbackHandler mantiene dependencias para endpoints de valoraciones.
type FeedbackHandler struct {
	logger      *zap.Logger
	feedbackSvc *service.FeedbackService
}

func NewFeedbackHandler(logger *zap.Logger, feedbackSvc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		logger:      logger,
		feedbackSvc: feedbackSvc,
	}
}

// Create maneja POST /feedback.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req struct {
		Rating  string `json:"rating" binding:"required,oneof=up down"`
		Content string `json:"content"`
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFeedbackBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fb, err := h.feedbackSvc.Record(c.Request.Context(), domain.Rating(req.Rating), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		h.logger.Error("record feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": fb})
}

// Summary maneja GET /feedback/summary.
func (h *FeedbackHandler) Summary(c *gin.Context) {
	summary, err := h.feedbackSvc.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("feedback summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feedback summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
