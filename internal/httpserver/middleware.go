package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gudang-gateway/internal/upstream"
)

const tokenContextKey = "apiToken"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

// tokenRequired extracts the client-held API token and attaches it to the
// request context so the upstream client can forward it. The scheme follows
// the upstream API ("Token <t>"); plain "Bearer" is accepted too.
func tokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		var token string
		switch {
		case strings.HasPrefix(header, "Token "):
			token = strings.TrimSpace(strings.TrimPrefix(header, "Token "))
		case strings.HasPrefix(header, "Bearer "):
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "authentication token required"},
			})
			return
		}
		c.Set(tokenContextKey, token)
		c.Request = c.Request.WithContext(upstream.ContextWithToken(c.Request.Context(), token))
		c.Next()
	}
}

func clientToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
