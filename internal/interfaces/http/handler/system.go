package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/retail/backend/internal/infrastructure/persistence"
)

// SystemHandler serves health and runtime information endpoints.
type SystemHandler struct {
	BaseHandler
	cfg       *config.Config
	db        *persistence.Database
	startedAt time.Time
}

func NewSystemHandler(cfg *config.Config, db *persistence.Database) *SystemHandler {
	return &SystemHandler{cfg: cfg, db: db, startedAt: time.Now()}
}

// RegisterRoutes mounts system routes on the given group.
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ping", h.Ping)
	rg.GET("/info", h.Info)
}

// Health reports service and database liveness.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "up"
	code := http.StatusOK

	if err := h.db.Ping(); err != nil {
		status = "unhealthy"
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ping is a bare liveness probe.
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Info reports application metadata and connection pool stats.
func (h *SystemHandler) Info(c *gin.Context) {
	info := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
		"uptime":      time.Since(h.startedAt).String(),
	}

	if stats, err := h.db.Stats(); err == nil {
		info["database"] = gin.H{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
		}
	}

	h.Success(c, info)
}
