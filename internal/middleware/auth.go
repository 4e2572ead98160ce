package middleware

import (
	"net/http"
	"strings"

	"CarbonFootprintTracker/internal/auth"

	"github.com/gin-gonic/gin"
)

// ContextUsername is the gin context key holding the authenticated username.
const ContextUsername = "username"

type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthMiddleware accepts "Authorization: Bearer <token>" or, for clients that
// cannot set headers (browser WebSocket), a ?token= query parameter.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			if auth.IsExpired(err) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return token, token != ""
	}
	token := c.Query("token")
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}
