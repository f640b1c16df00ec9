package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TicketsHandler es un stub: todavia no hay gestion de tickets real.
type TicketsHandler struct {
	logger *zap.Logger
}

func NewTicketsHandler(logger *zap.Logger) *TicketsHandler {
	return &TicketsHandler{logger: logger}
}

// Get maneja GET /tickets.
func (h *TicketsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from tickets API route!"})
}

// Post maneja POST /tickets devolviendo el body recibido.
func (h *TicketsHandler) Post(c *gin.Context) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("invalid tickets request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "POST request received", "data": body})
}
