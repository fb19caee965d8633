package auth

import (
	"testing"
	"time"

	"budget-tracker/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour})

	token, err := ts.GenerateToken(42)
	require.NoError(t, err)

	userID, err := ts.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenService_Rejects(t *testing.T) {
	ts := NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour})

	expired, err := NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: -time.Minute}).GenerateToken(1)
	require.NoError(t, err)

	otherKey, err := NewTokenService(config.Config{JWTSecret: "other", JWTExpiresIn: time.Hour}).GenerateToken(1)
	require.NoError(t, err)

	zeroUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 0,
		"iss":     issuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"iss":     issuer,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": otherKey,
		"zero user":    zeroUser,
		"no expiry":    noExpiry,
		"alg none":     noneAlg,
		"garbage":      "not-a-token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ts.ParseToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
