// Package auth issues and checks the session tokens handed out when a
// LinkedIn profile is connected.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/models"
)

const issuer = "careerfuture"

// ErrInvalidToken is returned for tokens that fail validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTService handles JWT token operations
type JWTService struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// Claims identifies the connected profile. The profile itself is not
// embedded; it is looked up again from the profile ID.
type Claims struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecret),
		expiry:    time.Duration(cfg.JWTExpiryHours) * time.Hour,
		now:       time.Now,
	}
}

// GenerateToken issues a session token for a connected profile.
func (s *JWTService) GenerateToken(profile *models.ProfileRecord) (string, error) {
	if profile == nil || profile.ProfileID == "" {
		return "", errors.New("profile ID is required")
	}

	now := s.now()
	claims := &Claims{
		ProfileID: profile.ProfileID,
		Name:      profile.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ProfileID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken validates a JWT token and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.ProfileID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
