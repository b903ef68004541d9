package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation outcomes. The delivery layer maps these to distinct
// user-facing messages, so expiry must stay distinguishable from tampering.
var (
	// ErrTokenExpired is returned when the token signature is valid but the token has expired.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned when the token is malformed or fails verification.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for a given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured access token lifetime.
	GetTokenDuration() time.Duration
}
