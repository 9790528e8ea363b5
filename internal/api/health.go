package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	logx "github.com/variable-maker/server/pkg/logger"
)

// HealthCheck probes one dependency; nil means healthy.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves the service banner and dependency health.
type HealthHandler struct {
	version string
	checks  map[string]HealthCheck
}

func NewHealthHandler(version string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.root)
	router.GET("/health", h.health)
}

func (h *HealthHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Variable Maker API",
		"version": h.version,
		"status":  "healthy",
	})
}

func (h *HealthHandler) health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Dependencies: map[string]string{}}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			logx.Warn().Err(err).Str("dependency", name).Msg("health check failed")
			resp.Dependencies[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Dependencies[name] = "ok"
	}
	c.JSON(status, resp)
}
