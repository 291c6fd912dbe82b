package repository

import (
	"context"
	"errors"

	"markethub/internal/domain/entity"
)

// ErrSessionNotFound is a domain-specific error returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the durable server-side session store.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a non-expired session by its token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a single session, e.g. on logout.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByEmail removes every session of an account, e.g. on deactivation.
	DeleteByEmail(ctx context.Context, email string) error
}
