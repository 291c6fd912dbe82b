package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/entity"
	"markethub/internal/domain/repository"
)

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	args := m.Called(ctx, sku, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) Search(
	ctx context.Context, filter repository.ProductFilter, page repository.PageRequest,
) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepository) Archive(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) HasOpenOrders(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) ValueByCategory(ctx context.Context) ([]*entity.CategoryValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CategoryValue), args.Error(1)
}

func (m *ProductRepository) FindIdleStock(ctx context.Context, days int) ([]*entity.IdleProduct, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.IdleProduct), args.Error(1)
}

// PriceHistoryRepository is a mock implementation of repository.PriceHistoryRepository.
type PriceHistoryRepository struct {
	mock.Mock
}

func (m *PriceHistoryRepository) Append(ctx context.Context, change *entity.PriceChange) error {
	args := m.Called(ctx, change)

	return args.Error(0)
}
