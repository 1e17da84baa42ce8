// Package server exposes the dithering engine over HTTP for callers that
// cannot link the library directly, such as e-ink display firmware fetching
// pre-rendered screens.
package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkplot/halftone/internal/config"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter() *gin.Engine {
	if config.Get("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(corsMiddleware())

	r.GET("/healthz", healthzHandler)

	api := r.Group("/api")
	{
		api.GET("/version", versionHandler)
		api.GET("/capabilities", capabilitiesHandler)
		api.GET("/palettes", palettesHandler)
		api.POST("/render", BodyLimit(), RateLimit(), renderHandler)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if origins := config.Get("CORS_ALLOW_ORIGINS", ""); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}
