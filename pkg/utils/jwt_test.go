package utils

import (
	"testing"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Server: config.ServerConfig{JwtSecretKey: "test-secret"}}
	user := &models.User{
		UserID:   uuid.New(),
		Email:    "user@example.com",
		Username: "user",
		Tier:     "pro",
	}

	token, err := GenerateJWTToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, user.UserID.String(), claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, "pro", claims.Tier)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Server: config.ServerConfig{JwtSecretKey: "test-secret"}}
	user := &models.User{UserID: uuid.New(), Email: "user@example.com", Username: "user", Tier: "free"}

	token, err := GenerateJWTToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ValidateToken("not-a-token", "test-secret")
	require.Error(t, err)
}
