package impl

import (
	"context"
	"testing"
	"time"

	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/domain/service"
	"markethub/internal/mocks"
	"markethub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(
	txManager *mocks.TransactionManager,
	accountRepo *mocks.AccountRepository,
	tokenService *mocks.TokenService,
	hasher *mocks.PasswordHasher,
) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		TokenService: tokenService,
		Hasher:       hasher,
		Logger:       testLogger(),
	})
}

func TestAccountService_Register_Success(t *testing.T) {
	txManager, factory := newTxManager()
	hasher := new(mocks.PasswordHasher)
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), hasher)

	hasher.On("ValidateStrength", "Sup3r$ecret").Return(nil)
	hasher.On("Hash", "Sup3r$ecret").Return("hashed-password", nil)

	factory.Accounts.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(nil, repository.ErrAccountNotFound)
	factory.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
		return a.Email == "alice@example.com" &&
			a.Role == entity.RoleCustomer &&
			a.PasswordHash == "hashed-password" &&
			a.Status == entity.StatusActive
	})).Return(nil)
	factory.ActivityLogs.On("Append", mock.Anything, mock.MatchedBy(func(l *entity.ActivityLog) bool {
		return l.Email == "alice@example.com" && l.Activity == entity.ActivityRegistered
	})).Return(nil)

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:           "  Alice@Example.COM ",
		Role:            "customer",
		FirstName:       "Alice",
		LastName:        "Doe",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.Account.Email)
	factory.Accounts.AssertExpectations(t)
	factory.ActivityLogs.AssertExpectations(t)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	txManager, factory := newTxManager()
	hasher := new(mocks.PasswordHasher)
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), hasher)

	hasher.On("ValidateStrength", mock.Anything).Return(nil)
	hasher.On("Hash", mock.Anything).Return("hashed-password", nil)
	factory.Accounts.On("FindByEmail", mock.Anything, "bob@example.com").
		Return(&entity.Account{Email: "bob@example.com"}, nil)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:           "bob@example.com",
		Role:            "merchant",
		Password:        "Sup3r$ecret",
		ConfirmPassword: "Sup3r$ecret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	factory.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_InputValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		wantErr error
	}{
		{
			name:    "malformed email",
			input:   &usecase.RegisterInput{Email: "not-an-email", Role: "customer", Password: "Sup3r$ecret", ConfirmPassword: "Sup3r$ecret"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown role",
			input:   &usecase.RegisterInput{Email: "a@example.com", Role: "admin", Password: "Sup3r$ecret", ConfirmPassword: "Sup3r$ecret"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "password confirmation mismatch",
			input:   &usecase.RegisterInput{Email: "a@example.com", Role: "customer", Password: "Sup3r$ecret", ConfirmPassword: "different"},
			wantErr: domainerrors.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager, _ := newTxManager()
			svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), new(mocks.PasswordHasher))

			_, err := svc.Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	txManager, _ := newTxManager()
	hasher := new(mocks.PasswordHasher)
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), hasher)

	hasher.On("ValidateStrength", "weakpass").Return(assert.AnError)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:           "a@example.com",
		Role:            "customer",
		Password:        "weakpass",
		ConfirmPassword: "weakpass",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Login_Success(t *testing.T) {
	txManager, factory := newTxManager()
	accountRepo := new(mocks.AccountRepository)
	tokenService := new(mocks.TokenService)
	hasher := new(mocks.PasswordHasher)
	svc := newAccountService(txManager, accountRepo, tokenService, hasher)

	account := &entity.Account{
		Email:        "alice@example.com",
		Role:         entity.RoleCustomer,
		FirstName:    "Alice",
		LastName:     "Doe",
		PasswordHash: "hashed-password",
		Status:       entity.StatusActive,
	}

	accountRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(account, nil)
	hasher.On("Check", "Sup3r$ecret", "hashed-password").Return(true)
	tokenService.On("GeneratePair", service.TokenClaims{
		Email: "alice@example.com", Role: "customer", Name: "Alice Doe",
	}).Return("access-token", "refresh-token", nil)
	tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	tokenService.On("RefreshTTL").Return(168 * time.Hour)

	factory.Sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.Email == "alice@example.com" && s.TokenHash == "refresh-hash" && s.ExpiresAt.After(s.CreatedAt)
	})).Return(nil)
	factory.Accounts.On("UpdateLastLogin", mock.Anything, "alice@example.com", mock.Anything).Return(nil)
	factory.ActivityLogs.On("Append", mock.Anything, mock.MatchedBy(func(l *entity.ActivityLog) bool {
		return l.Activity == entity.ActivityLoggedIn
	})).Return(nil)

	out, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "Alice@example.com", Password: "Sup3r$ecret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	require.NotNil(t, out.Account.LastLogin)
	factory.Sessions.AssertExpectations(t)
}

func TestAccountService_Login_Failures(t *testing.T) {
	disabled := &entity.Account{Email: "d@example.com", PasswordHash: "hash", Status: entity.StatusDisabled}

	tests := []struct {
		name       string
		email      string
		password   string
		account    *entity.Account
		findErr    error
		passwordOK bool
		wantErr    error
	}{
		{
			name: "unknown email", email: "ghost@example.com", password: "x",
			findErr: repository.ErrAccountNotFound, wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password", email: "d@example.com", password: "bad",
			account: disabled, passwordOK: false, wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "disabled account", email: "d@example.com", password: "right",
			account: disabled, passwordOK: true, wantErr: domainerrors.ErrAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager, _ := newTxManager()
			accountRepo := new(mocks.AccountRepository)
			hasher := new(mocks.PasswordHasher)
			svc := newAccountService(txManager, accountRepo, new(mocks.TokenService), hasher)

			if tt.findErr != nil {
				accountRepo.On("FindByEmail", mock.Anything, tt.email).Return(nil, tt.findErr)
			} else {
				accountRepo.On("FindByEmail", mock.Anything, tt.email).Return(tt.account, nil)
				hasher.On("Check", tt.password, tt.account.PasswordHash).Return(tt.passwordOK)
			}

			_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: tt.email, Password: tt.password})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountService_Refresh_RotatesSession(t *testing.T) {
	txManager, factory := newTxManager()
	tokenService := new(mocks.TokenService)
	svc := newAccountService(txManager, new(mocks.AccountRepository), tokenService, new(mocks.PasswordHasher))

	account := &entity.Account{
		Email:     "alice@example.com",
		Role:      entity.RoleCustomer,
		FirstName: "Alice",
		LastName:  "Doe",
		Status:    entity.StatusActive,
	}

	tokenService.On("ValidateRefresh", "old-refresh").
		Return(&service.TokenClaims{Email: "alice@example.com"}, nil)
	tokenService.On("HashToken", "old-refresh").Return("old-hash")
	tokenService.On("GeneratePair", service.TokenClaims{
		Email: "alice@example.com", Role: "customer", Name: "Alice Doe",
	}).Return("new-access", "new-refresh", nil)
	tokenService.On("HashToken", "new-refresh").Return("new-hash")
	tokenService.On("RefreshTTL").Return(168 * time.Hour)

	factory.Sessions.On("FindByTokenHash", mock.Anything, "old-hash").
		Return(&entity.Session{Email: "alice@example.com", TokenHash: "old-hash"}, nil)
	factory.Accounts.On("FindByEmail", mock.Anything, "alice@example.com").Return(account, nil)
	factory.Sessions.On("DeleteByTokenHash", mock.Anything, "old-hash").Return(nil)
	factory.Sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.Email == "alice@example.com" && s.TokenHash == "new-hash" && s.ExpiresAt.After(s.CreatedAt)
	})).Return(nil)

	out, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
	factory.Sessions.AssertExpectations(t)
}

func TestAccountService_Refresh_InvalidToken(t *testing.T) {
	txManager, _ := newTxManager()
	tokenService := new(mocks.TokenService)
	svc := newAccountService(txManager, new(mocks.AccountRepository), tokenService, new(mocks.PasswordHasher))

	tokenService.On("ValidateRefresh", "garbage").Return(nil, assert.AnError)

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_Refresh_UnknownSession(t *testing.T) {
	txManager, factory := newTxManager()
	tokenService := new(mocks.TokenService)
	svc := newAccountService(txManager, new(mocks.AccountRepository), tokenService, new(mocks.PasswordHasher))

	tokenService.On("ValidateRefresh", "old-refresh").
		Return(&service.TokenClaims{Email: "alice@example.com"}, nil)
	tokenService.On("HashToken", "old-refresh").Return("old-hash")
	factory.Sessions.On("FindByTokenHash", mock.Anything, "old-hash").
		Return(nil, repository.ErrSessionNotFound)

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "old-refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	factory.Sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Refresh_DisabledAccount(t *testing.T) {
	txManager, factory := newTxManager()
	tokenService := new(mocks.TokenService)
	svc := newAccountService(txManager, new(mocks.AccountRepository), tokenService, new(mocks.PasswordHasher))

	tokenService.On("ValidateRefresh", "old-refresh").
		Return(&service.TokenClaims{Email: "d@example.com"}, nil)
	tokenService.On("HashToken", "old-refresh").Return("old-hash")
	factory.Sessions.On("FindByTokenHash", mock.Anything, "old-hash").
		Return(&entity.Session{Email: "d@example.com", TokenHash: "old-hash"}, nil)
	factory.Accounts.On("FindByEmail", mock.Anything, "d@example.com").
		Return(&entity.Account{Email: "d@example.com", Status: entity.StatusDisabled}, nil)

	_, err := svc.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "old-refresh"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	factory.Sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_UpdateProfile_NoChanges(t *testing.T) {
	txManager, _ := newTxManager()
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), new(mocks.PasswordHasher))

	out, err := svc.UpdateProfile(context.Background(), "alice@example.com", &usecase.UpdateProfileInput{})

	require.NoError(t, err)
	assert.False(t, out.Updated)
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), new(mocks.PasswordHasher))

	first := "Alicia"
	phone := "555-0100"

	factory.Accounts.On("UpdateProfile", mock.Anything, "alice@example.com",
		mock.MatchedBy(func(u *repository.AccountUpdate) bool {
			return u.FirstName != nil && *u.FirstName == "Alicia" &&
				u.Phone != nil && *u.Phone == "555-0100" && u.PasswordHash == nil
		})).Return(nil)
	factory.ActivityLogs.On("Append", mock.Anything, mock.MatchedBy(func(l *entity.ActivityLog) bool {
		return l.Activity == entity.ActivityProfileUpdated
	})).Return(nil)

	out, err := svc.UpdateProfile(context.Background(), "alice@example.com", &usecase.UpdateProfileInput{
		FirstName: &first,
		Phone:     &phone,
	})

	require.NoError(t, err)
	assert.True(t, out.Updated)
	factory.Accounts.AssertExpectations(t)
}

func TestAccountService_UpdateProfile_PasswordChange(t *testing.T) {
	txManager, factory := newTxManager()
	hasher := new(mocks.PasswordHasher)
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), hasher)

	hasher.On("ValidateStrength", "N3w$ecret!").Return(nil)
	hasher.On("Hash", "N3w$ecret!").Return("new-hash", nil)

	factory.Accounts.On("UpdateProfile", mock.Anything, "alice@example.com",
		mock.MatchedBy(func(u *repository.AccountUpdate) bool {
			return u.PasswordHash != nil && *u.PasswordHash == "new-hash"
		})).Return(nil)
	factory.ActivityLogs.On("Append", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.UpdateProfile(context.Background(), "alice@example.com", &usecase.UpdateProfileInput{
		NewPassword:     "N3w$ecret!",
		ConfirmPassword: "N3w$ecret!",
	})

	require.NoError(t, err)
	assert.True(t, out.Updated)
}

func TestAccountService_Deactivate_Success(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newAccountService(txManager, new(mocks.AccountRepository), new(mocks.TokenService), new(mocks.PasswordHasher))

	factory.Accounts.On("SetStatus", mock.Anything, "alice@example.com", entity.StatusDisabled).Return(nil)
	factory.Sessions.On("DeleteByEmail", mock.Anything, "alice@example.com").Return(nil)
	factory.ActivityLogs.On("Append", mock.Anything, mock.MatchedBy(func(l *entity.ActivityLog) bool {
		return l.Activity == entity.ActivityDeactivated
	})).Return(nil)

	err := svc.Deactivate(context.Background(), "alice@example.com")

	require.NoError(t, err)
	factory.Sessions.AssertExpectations(t)
}

func TestAccountService_Logout_MissingSessionIsNotAnError(t *testing.T) {
	txManager, factory := newTxManager()
	tokenService := new(mocks.TokenService)
	svc := newAccountService(txManager, new(mocks.AccountRepository), tokenService, new(mocks.PasswordHasher))

	tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	factory.Sessions.On("DeleteByTokenHash", mock.Anything, "refresh-hash").
		Return(repository.ErrSessionNotFound)
	factory.ActivityLogs.On("Append", mock.Anything, mock.MatchedBy(func(l *entity.ActivityLog) bool {
		return l.Activity == entity.ActivityLoggedOut
	})).Return(nil)

	err := svc.Logout(context.Background(), "alice@example.com", &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}
