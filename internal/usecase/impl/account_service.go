// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "markethub/internal/delivery/context"
	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/domain/service"
	"markethub/internal/usecase"
	"markethub/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account together with its first audit row.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("role", input.Role))

	if !validation.IsValidEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid email address.")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Role must be customer or merchant.")
	}

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Email:        email,
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Phone:        input.Phone,
		Website:      input.Website,
		BusinessName: input.BusinessName,
		Status:       entity.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if createErr := accountRepo.Create(ctx, account); createErr != nil {
			return errors.Wrap(createErr, "failed to create account")
		}

		return repoFactory.ActivityLogRepo().Append(ctx, &entity.ActivityLog{
			Email:      email,
			Activity:   entity.ActivityRegistered,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", email))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies credentials, issues a token pair and establishes a durable
// server-side session keyed by the refresh token hash.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !account.IsActive() {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, refreshToken, err := srv.tokenService.GeneratePair(service.TokenClaims{
		Email: account.Email,
		Role:  account.Role.String(),
		Name:  account.DisplayName(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:        uuid.New(),
		Email:     account.Email,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.RefreshTTL()),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if sessErr := repoFactory.SessionRepo().Create(ctx, session); sessErr != nil {
			return errors.Wrap(sessErr, "failed to create session")
		}
		if loginErr := repoFactory.AccountRepo().UpdateLastLogin(ctx, account.Email, now); loginErr != nil {
			return errors.Wrap(loginErr, "failed to stamp last login")
		}

		return repoFactory.ActivityLogRepo().Append(ctx, &entity.ActivityLog{
			Email:      account.Email,
			Activity:   entity.ActivityLoggedIn,
			OccurredAt: now,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist login session", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	account.LastLogin = &now
	srv.log(ctx).Info("Login succeeded", slog.String("email", email))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh exchanges a valid refresh token for a rotated token pair. The
// presented token must verify cryptographically and its hash must still have
// a live session row; the old session is replaced in the same transaction.
func (srv *accountService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if _, err := srv.tokenService.ValidateRefresh(input.RefreshToken); err != nil {
		srv.log(ctx).Warn("Refresh token failed validation", slog.Any("error", err))

		return nil, domainerrors.ErrSessionInvalid
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.RefreshOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, findErr := repoFactory.SessionRepo().FindByTokenHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionInvalid
			}

			return errors.Wrap(findErr, "failed to look up session")
		}

		account, accErr := repoFactory.AccountRepo().FindByEmail(ctx, session.Email)
		if accErr != nil {
			if errors.Is(accErr, repository.ErrAccountNotFound) {
				return domainerrors.ErrSessionInvalid
			}

			return errors.Wrap(accErr, "failed to load session account")
		}
		if !account.IsActive() {
			return domainerrors.ErrAccountDisabled
		}

		accessToken, refreshToken, genErr := srv.tokenService.GeneratePair(service.TokenClaims{
			Email: account.Email,
			Role:  account.Role.String(),
			Name:  account.DisplayName(),
		})
		if genErr != nil {
			return errors.Wrap(genErr, "failed to rotate token pair")
		}

		if delErr := repoFactory.SessionRepo().DeleteByTokenHash(ctx, tokenHash); delErr != nil {
			return errors.Wrap(delErr, "failed to retire session")
		}

		now := time.Now().UTC()
		if createErr := repoFactory.SessionRepo().Create(ctx, &entity.Session{
			ID:        uuid.New(),
			Email:     account.Email,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: now.Add(srv.tokenService.RefreshTTL()),
			CreatedAt: now,
		}); createErr != nil {
			return errors.Wrap(createErr, "failed to create rotated session")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// GetProfile returns the account behind the authenticated email.
func (srv *accountService) GetProfile(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return account, nil
}

// UpdateProfile applies a partial profile update. Submitting no changes is an
// informational no-op, not an error.
func (srv *accountService) UpdateProfile(
	ctx context.Context, email string, input *usecase.UpdateProfileInput,
) (*usecase.UpdateProfileOutput, error) {
	email = entity.NormalizeEmail(email)

	update := &repository.AccountUpdate{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Website:      input.Website,
		BusinessName: input.BusinessName,
	}

	if input.NewPassword != "" {
		if input.NewPassword != input.ConfirmPassword {
			return nil, domainerrors.ErrPasswordMismatch
		}
		if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
			return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		update.PasswordHash = &hash
	}

	if update.Empty() {
		srv.log(ctx).Debug("Profile update with no changes", slog.String("email", email))

		return &usecase.UpdateProfileOutput{Updated: false}, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if updErr := repoFactory.AccountRepo().UpdateProfile(ctx, email, update); updErr != nil {
			if errors.Is(updErr, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(updErr, "failed to update profile")
		}

		return repoFactory.ActivityLogRepo().Append(ctx, &entity.ActivityLog{
			Email:      email,
			Activity:   entity.ActivityProfileUpdated,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return &usecase.UpdateProfileOutput{Updated: true}, nil
}

// Deactivate soft-deletes the account and invalidates all of its sessions.
func (srv *accountService) Deactivate(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	srv.log(ctx).Info("Deactivating account", slog.String("email", email))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().SetStatus(ctx, email, entity.StatusDisabled); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to disable account")
		}

		if err := repoFactory.SessionRepo().DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to drop sessions")
		}

		return repoFactory.ActivityLogRepo().Append(ctx, &entity.ActivityLog{
			Email:      email,
			Activity:   entity.ActivityDeactivated,
			OccurredAt: time.Now().UTC(),
		})
	})
}

// Logout removes the presented session. An already-gone session still logs
// out cleanly.
func (srv *accountService) Logout(ctx context.Context, email string, input *usecase.LogoutInput) error {
	email = entity.NormalizeEmail(email)
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().DeleteByTokenHash(ctx, tokenHash); err != nil &&
			!errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to delete session")
		}

		return repoFactory.ActivityLogRepo().Append(ctx, &entity.ActivityLog{
			Email:      email,
			Activity:   entity.ActivityLoggedOut,
			OccurredAt: time.Now().UTC(),
		})
	})
}
