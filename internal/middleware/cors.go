package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowOrigins lists the origins allowed to make cross-origin
	// requests. ["*"] allows every origin and is the debug-mode default;
	// deployments list the console frontends explicitly.
	AllowOrigins []string

	// AllowMethods lists the HTTP methods allowed for cross-origin requests.
	AllowMethods []string

	// AllowHeaders lists the request headers allowed in cross-origin requests.
	AllowHeaders []string

	// AllowCredentials permits cookies and Authorization headers on
	// cross-origin requests.
	AllowCredentials bool

	// MaxAge is how long (in seconds) browsers may cache a preflight result.
	MaxAge string
}

// DefaultCORSConfig is permissive and meant for local development, where
// the console frontend runs on an arbitrary dev-server port.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           "86400",
	}
}

// CORS returns a middleware using DefaultCORSConfig.
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig returns a middleware that answers cross-origin requests
// according to cfg. Requests from origins outside the allow list pass
// through without CORS headers; the browser enforces the block.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	wildcard := len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*"
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			// Same-origin or non-browser request.
			c.Next()
			return
		}

		// Responses differ by Origin, so caches must key on it.
		c.Writer.Header().Add("Vary", "Origin")

		switch {
		case wildcard && cfg.AllowCredentials:
			// Credentialed responses may not use the "*" form; echo the
			// specific origin instead.
			c.Header("Access-Control-Allow-Origin", origin)
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case originAllowed(cfg.AllowOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
		default:
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Max-Age", cfg.MaxAge)

		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
