package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "asha@example.com", "household", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "household", claims.UserType)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	JwtSecret = []byte("test-secret")

	token, err := GenerateJWT("user-1", "asha@example.com", "household", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")
	token, err := GenerateJWT("user-1", "asha@example.com", "household", time.Hour)
	require.NoError(t, err)

	JwtSecret = []byte("other-secret")
	defer func() { JwtSecret = []byte("test-secret") }()

	_, err = ParseJWT(token)
	assert.Error(t, err)
}
