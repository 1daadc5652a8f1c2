package middleware

import (
	"fittrack-backend/helpers"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authentication validates the bearer token and injects the caller's
// identity into the gin context as "uid".
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"status":  http.StatusUnauthorized,
				"message": "No authorization token provided",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, msg := helpers.ValidateToken(token)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"status":  http.StatusUnauthorized,
				"message": msg,
			})
			c.Abort()
			return
		}

		c.Set("uid", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}
