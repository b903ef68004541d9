package auth

import (
	"testing"
	"time"

	"forkcast/config"
	"forkcast/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", 0)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", 0)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	userID := uuid.New()

	issuer, err := NewJWTService(testConfig("secret-one-very-long-for-testing", 0))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-two-very-long-for-testing", 0))
	assert.NoError(t, err)

	token, err := issuer.GenerateToken(userID)
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(testConfig(secret, 0))
	assert.NoError(t, err)

	// Hand-craft a token that expired an hour ago with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig("", 0)

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetTokenDuration(t *testing.T) {
	// Default TTL when config leaves it unset
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24*7, jwtService.GetTokenDuration())

	// Configured TTL wins
	jwtService, err = NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetTokenDuration())
}
