package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/service"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *PasswordHasher) ValidateStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) GeneratePair(claims service.TokenClaims) (string, string, error) {
	args := m.Called(claims)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenService) ValidateAccess(tokenString string) (*service.TokenClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.TokenClaims), args.Error(1)
}

func (m *TokenService) ValidateRefresh(tokenString string) (*service.TokenClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.TokenClaims), args.Error(1)
}

func (m *TokenService) HashToken(token string) string {
	args := m.Called(token)

	return args.String(0)
}

func (m *TokenService) RefreshTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// ChatCompleter is a mock implementation of service.ChatCompleter.
type ChatCompleter struct {
	mock.Mock
}

func (m *ChatCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	args := m.Called(ctx, systemPrompt, userMessage)

	return args.String(0), args.Error(1)
}

func (m *ChatCompleter) Configured() bool {
	args := m.Called()

	return args.Bool(0)
}
