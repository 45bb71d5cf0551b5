package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/database"
)

// DatabaseHealth is the part of the database manager the health check needs
type DatabaseHealth interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
	Driver() string
}

// HealthHandler reports liveness and storage health
type HealthHandler struct {
	db     DatabaseHealth
	logger coreport.Logger
}

// NewHealthHandler creates a health handler. db is nil when the service runs on in-memory storage
func NewHealthHandler(db DatabaseHealth, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: "memory"})
		return
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Storage:  "database",
			Database: h.db.Driver(),
			Error:    "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Storage:  "database",
		Database: h.db.Driver(),
		Pool:     h.db.PoolMetrics(),
	})
}
