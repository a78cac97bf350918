package server

import (
	"net/http"
	"strings"
	"time"

	"market-indexes/src/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// CORS
// -----------------------------------------------------------------------------

// allowedOrigin admits local front-ends only. Shared by CORS and the
// websocket upgrade.
func allowedOrigin(origin string) bool {
	return strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:")
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: allowedOrigin,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// -----------------------------------------------------------------------------
// Request logging
// -----------------------------------------------------------------------------

func requestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		l.Debug("%s %s -> %d (%s)", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
