// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"markethub/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountUpdate carries a partial profile update. Nil fields are left
// untouched; non-nil pointer fields overwrite, including with empty strings,
// mirroring the form semantics where a cleared optional field clears the
// column.
type AccountUpdate struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Website      *string
	BusinessName *string
	PasswordHash *string
}

// Empty reports whether the update would change nothing.
func (u *AccountUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil &&
		u.Website == nil && u.BusinessName == nil && u.PasswordHash == nil
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its case-folded email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateProfile applies a partial profile update to the account.
	UpdateProfile(ctx context.Context, email string, update *AccountUpdate) error

	// UpdateLastLogin stamps the most recent successful login.
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error

	// SetStatus flips the soft-delete flag of an account.
	SetStatus(ctx context.Context, email string, status entity.Status) error

	// CountAll returns the total number of accounts.
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus returns the number of accounts in the given status.
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)

	// CountByRole returns per-role account counts for charting.
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)

	// CountRegisteredSince returns the number of accounts of the given role
	// created at or after the given time.
	CountRegisteredSince(ctx context.Context, role entity.Role, since time.Time) (int64, error)

	// ListRecent returns the most recently created accounts, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Account, error)
}
