package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportscolaire_backend/internals/configs"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "secret123"))
	assert.Error(t, CheckPasswordHash(hash, "mauvais"))
}

func TestGenerateAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	userID := uuid.New()
	actorID := uuid.New()

	tokenStr, err := GenerateAccessToken(userID, actorID, "tutor")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, actorID.String(), claims["actor_id"])
	assert.Equal(t, "tutor", claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestGenerateAccessTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateAccessToken(uuid.New(), uuid.New(), "admin")
	assert.Error(t, err)
}
