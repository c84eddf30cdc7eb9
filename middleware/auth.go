package middleware

import (
	"net/http"
	"strings"

	userRepo "barberbook/database/repository/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and checks it is still the
// account's current token, then sets the identity on the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Signin rotates the stored hash, so older tokens stop working.
		account, err := users.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || account == nil || account.ID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("userID", account.ID)
		c.Set("role", account.Role)
		if account.EstablishmentID != "" {
			c.Set("establishmentID", account.EstablishmentID)
		}
		c.Next()
	}
}
