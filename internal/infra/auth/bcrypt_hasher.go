// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"markethub/config"
	"markethub/internal/domain/service"
	"markethub/internal/errors"
	"markethub/internal/validation"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy validation.PasswordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := validation.DefaultPasswordPolicy
	if cfg.PasswordStrength != nil {
		policy = validation.PasswordPolicy{
			MinLength:        cfg.PasswordStrength.MinLength,
			RequireUppercase: cfg.PasswordStrength.RequireUppercase,
			RequireLowercase: cfg.PasswordStrength.RequireLowercase,
			RequireNumbers:   cfg.PasswordStrength.RequireNumbers,
			RequireSpecial:   cfg.PasswordStrength.RequireSpecial,
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidateStrength checks the password against the configured policy and
// reports the first unmet rule.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if ok, msg := validation.CheckPasswordStrength(password, h.policy); !ok {
		return errors.New(msg)
	}

	return nil
}
