package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger es la sonda de conectividad contra el almacenamiento durable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reporta el estado del servicio y de la base.
type HealthHandler struct {
	logger *zap.Logger
	db     Pinger
}

// NewHealthHandler crea una instancia de HealthHandler.
func NewHealthHandler(logger *zap.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// Health maneja GET /health. Es el único lugar donde una falla de storage
// se captura y se degrada en vez de propagarse.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := "ok"
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("db health check failed", zap.Error(err))
		dbStatus = "down"
		status = "fail"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"db":     dbStatus,
	})
}
