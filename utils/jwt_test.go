package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavesh0907/organization-management-service-backend/config"
)

func setJWTConfig(t *testing.T, ttl time.Duration) {
	t.Helper()
	config.JWTKey = []byte("test-signing-key")
	config.JWTExpiration = ttl
}

func TestJWTRoundTrip(t *testing.T) {
	setJWTConfig(t, time.Hour)

	token, err := GenerateJWT("64a000000000000000000001", "64a000000000000000000002", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64a000000000000000000001", claims.AdminID)
	assert.Equal(t, "64a000000000000000000002", claims.OrganizationID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTExpired(t *testing.T) {
	setJWTConfig(t, -time.Minute)

	token, err := GenerateJWT("64a000000000000000000001", "64a000000000000000000002", "a@x.com")
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTTampered(t *testing.T) {
	setJWTConfig(t, time.Hour)

	token, err := GenerateJWT("64a000000000000000000001", "64a000000000000000000002", "a@x.com")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestJWTWrongKey(t *testing.T) {
	setJWTConfig(t, time.Hour)

	token, err := GenerateJWT("64a000000000000000000001", "64a000000000000000000002", "a@x.com")
	require.NoError(t, err)

	config.JWTKey = []byte("a-different-key")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
