package server

import (
	"net/http"
	"time"

	"github.com/the-auction-games/auction-api/internal/metrics"
	"github.com/the-auction-games/auction-api/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	})
}

// RequestIDMiddleware assigns a unique id to each request for log correlation
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = utils.GenerateID()
	}
	c.Set("request_id", id)
	c.Writer.Header().Set("X-Request-ID", id)
	c.Next()
}

// CORSMiddleware allows any origin, matching the open policy of the web frontend
func CORSMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
	c.Writer.Header().Set("Access-Control-Max-Age", "86400")

	// Handle preflight OPTIONS request
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}

// StatusRecorderMiddleware counts response status codes in the metrics collector
func StatusRecorderMiddleware(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		rec.RecordHTTPStatus(c.Writer.Status())
	}
}
