package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/infrastructure/config"
)

// Maintenance puts the API into read-only mode. While enabled, GET and
// HEAD requests pass through untouched, as do writes to allow-listed
// path prefixes (login has to keep working so admins can get back in).
// Everything else is rejected with 503 before it reaches a handler.
func Maintenance(cfg config.MaintenanceConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		for _, prefix := range cfg.AllowedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error":    cfg.Message,
			"readOnly": true,
		})
	}
}
