// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"markethub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email           string
	Role            string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
	Phone           *string
	Website         *string
	BusinessName    *string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil or empty fields
// are skipped; a non-empty NewPassword must match ConfirmPassword and pass
// the strength policy.
type UpdateProfileInput struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	Website         *string
	BusinessName    *string
	NewPassword     string
	ConfirmPassword string
}

// RefreshInput carries the refresh token presented for exchange.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput identifies the session to invalidate.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the token pair and account after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UpdateProfileOutput reports whether anything changed. A no-op update is an
// informational, non-error outcome.
type UpdateProfileOutput struct {
	Updated bool
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	GetProfile(ctx context.Context, email string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, email string, input *UpdateProfileInput) (*UpdateProfileOutput, error)
	Deactivate(ctx context.Context, email string) error
	Logout(ctx context.Context, email string, input *LogoutInput) error
}
