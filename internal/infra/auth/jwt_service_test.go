package auth

import (
	"testing"
	"time"

	"academia/config"
	"academia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"student"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(service.TokenSubject{
		UserID:          userID,
		Roles:           roles,
		ProfileComplete: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.True(t, accessClaims.ProfileComplete)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	svc := tokenService.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	accessToken, _, err := svc.GenerateTokens(service.TokenSubject{UserID: uuid.New()})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	otherCfg := newJWTTestConfig()
	otherCfg.SecretKey.Access = "another_access_secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := issuer.GenerateTokens(service.TokenSubject{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	tokenService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	hash := tokenService.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, tokenService.HashToken("token"))
	assert.NotEqual(t, hash, tokenService.HashToken("other"))
}
