package handlers

import (
	"invoice_manager/internal/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireSession guards the API routes behind a valid login session. The
// token comes from the Authorization header as issued by Login.
func RequireSession(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userService.GetSessionUser(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
