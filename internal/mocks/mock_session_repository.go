package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/entity"
)

// SessionRepository is a mock implementation of repository.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *SessionRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}
