package middleware

import (
	"net/http"

	"barberbook/models"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts unless the authenticated account has one of the given
// roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		role, _ := roleVal.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// RequireOwner restricts a route to establishment owner accounts.
func RequireOwner() gin.HandlerFunc {
	return RequireRole(models.RoleEstablishment)
}
