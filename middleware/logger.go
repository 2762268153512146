package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is the access log for the API router.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := c.ClientIP()
		log.Printf("%s %s %s %d %s", method, path, clientIP, status, latency)
	}
}
