package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careerfuture/backend/models"
)

// AuthClaimsKey is the key used to store JWT claims in gin context
const AuthClaimsKey = "auth_claims"

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Status:  models.StatusError,
		Error:   message,
		Code:    http.StatusUnauthorized,
		Details: details,
	})
}

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			unauthorized(c, "Authorization header required", "")
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "Invalid authorization header format", "")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "Invalid or expired token", err.Error())
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid bearer token is sent.
// Requests without one, or with a bad one, continue anonymously.
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

// IsAuthenticated checks if a session token was accepted
func IsAuthenticated(c *gin.Context) bool {
	return GetAuthClaims(c) != nil
}
