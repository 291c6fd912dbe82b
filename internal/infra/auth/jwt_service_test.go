package auth

import (
	"testing"
	"time"

	"markethub/config"
	"markethub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 168 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidatePair(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	claims := service.TokenClaims{Email: "alice@example.com", Role: "customer", Name: "Alice Doe"}
	access, refresh, err := svc.GeneratePair(claims)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	got, err := svc.ValidateAccess(access)
	require.NoError(t, err)
	assert.Equal(t, &claims, got)

	got, err = svc.ValidateRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, &claims, got)
}

// Access and refresh tokens are signed with different secrets and carry a
// type claim, so they must not be interchangeable.
func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GeneratePair(service.TokenClaims{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.ValidateAccess(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefresh(access)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccess_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccess("not-a-token")

	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	first := svc.HashToken("refresh-token")
	second := svc.HashToken("refresh-token")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken("other-token"))
}

func TestJWTService_RefreshTTL(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 168*time.Hour, svc.RefreshTTL())
}
