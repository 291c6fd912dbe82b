package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"markethub/internal/domain/repository"
)

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the supplied function against the Factory field so tests can
// observe the repository calls made inside the transaction.
type TransactionManager struct {
	mock.Mock

	Factory *RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
// The per-repository fields are handed out as the transaction-bound instances.
type RepositoryFactory struct {
	mock.Mock

	Accounts     *AccountRepository
	ActivityLogs *ActivityLogRepository
	Products     *ProductRepository
	PriceHistory *PriceHistoryRepository
	Sessions     *SessionRepository
}

// NewRepositoryFactory builds a factory with every repository mock populated.
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		Accounts:     new(AccountRepository),
		ActivityLogs: new(ActivityLogRepository),
		Products:     new(ProductRepository),
		PriceHistory: new(PriceHistoryRepository),
		Sessions:     new(SessionRepository),
	}
}

func (m *RepositoryFactory) AccountRepo() repository.AccountRepository {
	return m.Accounts
}

func (m *RepositoryFactory) ActivityLogRepo() repository.ActivityLogRepository {
	return m.ActivityLogs
}

func (m *RepositoryFactory) ProductRepo() repository.ProductRepository {
	return m.Products
}

func (m *RepositoryFactory) PriceHistoryRepo() repository.PriceHistoryRepository {
	return m.PriceHistory
}

func (m *RepositoryFactory) SessionRepo() repository.SessionRepository {
	return m.Sessions
}
