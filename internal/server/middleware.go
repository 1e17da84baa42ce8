package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/inkplot/halftone/internal/config"
)

// RequestID attaches a request ID to every request, honoring an incoming
// X-Request-ID header so upstream proxies can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

var renderLimiters sync.Map

func getRenderLimiter(ip string, r rate.Limit, burst int) *rate.Limiter {
	if val, ok := renderLimiters.Load(ip); ok {
		return val.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(r, burst)
	renderLimiters.Store(ip, limiter)
	return limiter
}

// RateLimit enforces a per-IP token bucket on the render endpoint. Rendering
// is CPU-bound, so a modest default keeps one client from monopolizing the
// process.
func RateLimit() gin.HandlerFunc {
	perMinute := config.GetInt("RATE_LIMIT_PER_MINUTE", 30)
	if perMinute < 1 {
		perMinute = 1
	}
	burst := config.GetInt("RATE_LIMIT_BURST", 10)
	if burst < 1 {
		burst = 1
	}
	limit := rate.Every(time.Minute / time.Duration(perMinute))
	return func(c *gin.Context) {
		if !getRenderLimiter(c.ClientIP(), limit, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// BodyLimit caps the request body size. MAX_UPLOAD_MB configures the limit.
func BodyLimit() gin.HandlerFunc {
	maxBytes := int64(config.GetInt("MAX_UPLOAD_MB", 32)) << 20
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
