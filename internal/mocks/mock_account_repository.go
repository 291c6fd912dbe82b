// Package mocks provides hand-maintained testify mocks for the domain
// interfaces used across usecase and delivery tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/entity"
	"markethub/internal/domain/repository"
)

// AccountRepository is a mock implementation of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) UpdateProfile(ctx context.Context, email string, update *repository.AccountUpdate) error {
	args := m.Called(ctx, email, update)

	return args.Error(0)
}

func (m *AccountRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)

	return args.Error(0)
}

func (m *AccountRepository) SetStatus(ctx context.Context, email string, status entity.Status) error {
	args := m.Called(ctx, email, status)

	return args.Error(0)
}

func (m *AccountRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AccountRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	args := m.Called(ctx, status)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AccountRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[entity.Role]int64), args.Error(1)
}

func (m *AccountRepository) CountRegisteredSince(ctx context.Context, role entity.Role, since time.Time) (int64, error) {
	args := m.Called(ctx, role, since)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AccountRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Account, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}
