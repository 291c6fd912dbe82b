// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

// PasswordHasher abstracts password hashing and strength validation so the
// application layer does not depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidateStrength returns nil when the password meets the configured
	// policy, otherwise an error carrying the first unmet rule's message.
	ValidateStrength(password string) error
}
