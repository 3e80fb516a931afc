package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/scour/api/handler"
	"github.com/use-agent/scour/api/middleware"
	"github.com/use-agent/scour/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	Search:  RateLimit
//
// Health endpoint is intentionally outside rate limiting so monitoring
// probes always work.
func NewRouter(searcher handler.Searcher, enricher handler.Enricher, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/health", handler.Health(startTime))

	limited := r.Group("")
	limited.Use(middleware.RateLimit(cfg.RateLimit))
	limited.GET("/search", handler.Search(searcher, enricher))

	return r
}
