package auth

import (
	"testing"
	"time"

	"terrasense/config"
	"terrasense/internal/domain/entity"
	"terrasense/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Secret:   "test-secret-for-unit-tests",
		TokenTTL: ttl,
	}

	return cfg
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig(time.Hour))
	require.NoError(t, err)

	user := &entity.User{ID: 42, Email: "alice@example.com", Name: "Alice"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	svc, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(nil)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig(time.Second))
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.User{ID: 1, Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
	assert.False(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig(time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.Auth = &config.AuthConfig{Secret: "a-different-secret"}
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1, Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}
