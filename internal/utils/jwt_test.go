package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "a@b.com", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	// Expiry sits roughly one session TTL out
	assert.WithinDuration(t, time.Now().Add(SessionTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "a@b.com", testSecret)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "some-other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTExpired(t *testing.T) {
	// Build a token that expired an hour ago
	claims := Claims{
		UserID: 7,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	parsed, err := ParseJWT(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTGarbageToken(t *testing.T) {
	parsed, err := ParseJWT("not-a-token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}
