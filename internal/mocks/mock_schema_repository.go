package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/repository"
)

// SchemaRepository is a mock implementation of repository.SchemaRepository.
type SchemaRepository struct {
	mock.Mock
}

func (m *SchemaRepository) TableNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *SchemaRepository) TableColumns(ctx context.Context, table string) ([]repository.ColumnInfo, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]repository.ColumnInfo), args.Error(1)
}

func (m *SchemaRepository) RawSelect(ctx context.Context, query string) ([]map[string]any, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]map[string]any), args.Error(1)
}
