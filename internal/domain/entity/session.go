// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a durable server-side login session. It stores a SHA-256
// hash of the refresh token handed to the client; presenting the raw token is
// how a client proves ownership of the session.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	Email     string    // The account this session belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // Absolute expiry of the session.
	CreatedAt time.Time // When the session was established.
}

// Expired reports whether the session is past its absolute lifetime.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
