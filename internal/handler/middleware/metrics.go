package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics labels by the route template so ids in paths do not explode cardinality.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
