package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
)

func testConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "hoopspot-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("user-123", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, cfg.Issuer, claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("user-123", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("user-123", cfg)
	assert.NoError(t, err)

	assert.False(t, Expired(token, time.Now()))
	assert.True(t, Expired(token, time.Now().Add(61*time.Minute)))
	assert.True(t, Expired("garbage", time.Now()))
}
