package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-relay/internal/domain"
	"chat-relay/internal/service"
)

// relayErrorMessage es la unica respuesta de error que ve el cliente ante fallas del proveedor.
const relayErrorMessage = "An error occurred while processing your request"

// RelayHandler expone el relay de conversaciones.
type RelayHandler struct {
	logger *zap.Logger
	relay  *service.RelayService
}

// NewRelayHandler crea una instancia de RelayHandler con dependencias necesarias.
func NewRelayHandler(logger *zap.Logger, relay *service.RelayService) *RelayHandler {
	return &RelayHandler{
		logger: logger,
		relay:  relay,
	}
}

type relayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Relay maneja POST /relay.
func (h *RelayHandler) Relay(c *gin.Context) {
	var req struct {
		Messages []relayMessage `json:"messages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// JSON valido con tipos inesperados cae en la misma respuesta que una falla del proveedor.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			h.logger.Error("relay failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": relayErrorMessage})
			return
		}
		h.logger.Warn("invalid relay request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	messages := make([]domain.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, domain.Message{Role: domain.Role(m.Role), Content: m.Content})
	}

	// Si el cliente se va, la llamada al proveedor sigue hasta terminar.
	ctx := context.WithoutCancel(c.Request.Context())
	reply, err := h.relay.Relay(ctx, messages)
	if err != nil {
		h.logger.Error("relay failed", zap.Error(err), zap.Int("messages", len(messages)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": relayErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": reply.Content})
}

// Placeholder maneja GET /relay.
func (h *RelayHandler) Placeholder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from chat API route!"})
}
