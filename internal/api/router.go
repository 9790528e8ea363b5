package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/variable-maker/server/internal/core"
)

// RouterConfig tunes the HTTP surface.
type RouterConfig struct {
	Environment  core.Environment
	AllowOrigins []string
	Version      string
}

// NewRouter wires middleware, health and variable routes.
func NewRouter(cfg RouterConfig, health *HealthHandler, variables *VariableHandler) *gin.Engine {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(),
		gin.Recovery(),
		cors.New(newCORSConfig(cfg.AllowOrigins)),
	)

	health.RegisterRoutes(router)
	variables.RegisterRoutes(router)

	return router
}

func newCORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}

	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			trimmed = append(trimmed, o)
		}
	}
	if len(trimmed) == 0 || (len(trimmed) == 1 && trimmed[0] == "*") {
		corsConfig.AllowAllOrigins = true
		return corsConfig
	}
	corsConfig.AllowOrigins = trimmed
	return corsConfig
}
