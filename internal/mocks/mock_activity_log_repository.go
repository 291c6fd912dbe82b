package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/entity"
)

// ActivityLogRepository is a mock implementation of repository.ActivityLogRepository.
type ActivityLogRepository struct {
	mock.Mock
}

func (m *ActivityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}
