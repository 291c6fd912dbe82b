package auth

import (
	"testing"

	"markethub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	hash, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, hasher.Check("Sup3r$ecret", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	first, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	assert.NoError(t, hasher.ValidateStrength("Sup3r$ecret"))

	err := hasher.ValidateStrength("abcdefg1!")
	require.Error(t, err)
	assert.Equal(t, "Must contain uppercase letter", err.Error())
}
