package service

import "time"

// TokenClaims carries the identity embedded in an access token.
type TokenClaims struct {
	Email string
	Role  string
	Name  string
}

// TokenService issues and validates the token pair backing a login session.
// The refresh token is persisted server-side (hashed) as the durable session
// record; the access token is stateless.
type TokenService interface {
	// GeneratePair creates an access token and a refresh token for a user.
	GeneratePair(claims TokenClaims) (accessToken string, refreshToken string, err error)

	// ValidateAccess parses and verifies an access token.
	ValidateAccess(tokenString string) (*TokenClaims, error)

	// ValidateRefresh parses and verifies a refresh token.
	ValidateRefresh(tokenString string) (*TokenClaims, error)

	// HashToken returns the SHA-256 hex digest used to store refresh tokens.
	HashToken(token string) string

	// RefreshTTL returns the configured refresh token lifetime.
	RefreshTTL() time.Duration
}
