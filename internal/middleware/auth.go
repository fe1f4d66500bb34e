package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"deckquest/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the cookie the login handler sets
const SessionCookie = "auth_token"

// AuthMiddleware validates the session token and extracts user information.
// The token is read from the auth cookie, with an Authorization: Bearer
// fallback for non-browser clients. This is the only authorization gate;
// handlers never re-verify the session themselves.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie) // Prefer the session cookie
		if err != nil || tokenStr == "" {
			// Fall back to a bearer token
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			// Invalid or expired tokens mean unauthenticated, not a server error
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Set("email", claims.Email)   // Store email in context
		c.Next()                       // Proceed to the next handler
	}
}
