package auth

import (
	"testing"
	"time"

	"bizcard/config"
	"bizcard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	owner := entity.Owner{ID: "firebase-uid-1", Email: "owner@example.com", Name: "Owner"}

	token, err := jwtService.GenerateAccessToken(owner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, claims.Subject)
	assert.Equal(t, owner.Email, claims.Email)
	assert.Equal(t, owner.Name, claims.Name)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, time.Hour, jwtService.GetAccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ConfiguredTTLAndIssuer(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 5 * time.Minute, Issuer: "bizcard"}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, jwtService.GetAccessTokenDuration())

	token, err := jwtService.GenerateAccessToken(entity.Owner{ID: "uid"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bizcard", claims.Issuer)
}

func TestJWTService_EmptyOwner(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.GenerateAccessToken(entity.Owner{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	svc := tokenService.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateAccessToken(entity.Owner{ID: "uid"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	token, err := issuer.GenerateAccessToken(entity.Owner{ID: "uid"})
	require.NoError(t, err)

	cfg := newTestConfig()
	cfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsNonAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "uid",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "uid",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}
