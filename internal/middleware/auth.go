package middleware

import (
	"strings"

	"github.com/xyz-asif/dashboard/internal/pkg/response"
	"github.com/xyz-asif/dashboard/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and injects the authenticated identity into
// the request context. Missing, malformed, expired and tampered tokens all
// produce the same opaque 401; handlers downstream can rely on userID being set.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Accept "Bearer <token>" (case-insensitive) or a raw token
		fields := strings.Fields(authHeader)
		tokenString := authHeader
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		}

		claims, err := token.Validate(tokenString, secret)
		if err != nil {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
