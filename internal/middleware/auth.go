package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authHeader        = "Authorization"
	bearerPrefix      = "Bearer "
	StaffIDContextKey = "staff_id"
)

// TokenVerifier validates a bearer token and returns the staff ID it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// Auth returns a gin middleware that requires a valid Bearer token on every
// request. The staff ID is stored in the gin context under StaffIDContextKey.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		staffID, err := verifier.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(StaffIDContextKey, staffID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "unauthorized",
		"data":    nil,
	})
}

// StaffID returns the authenticated staff ID from the gin context, if present.
func StaffID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(StaffIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
