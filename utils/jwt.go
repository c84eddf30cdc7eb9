package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"barberbook/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "barberbook-dev"
	}
	return []byte(secret)
}

// AuthClaims is the decoded identity carried by an access token.
type AuthClaims struct {
	UserID          string
	Email           string
	Role            string
	EstablishmentID string
}

// GenerateToken creates a signed JWT for the given account. The establishment
// id may be empty for owners that have not created their profile yet.
func GenerateToken(userID, email, role, establishmentID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":             userID,
		"email":           email,
		"role":            role,
		"establishmentId": establishmentID,
		"iat":             time.Now().Unix(),
		"exp":             time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ClaimsFromToken extracts the auth claims from a valid token string.
func ClaimsFromToken(tokenString string) (*AuthClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &AuthClaims{UserID: sub}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["establishmentId"].(string); ok {
		out.EstablishmentID = v
	}
	return out, nil
}
