package impl

import (
	"io"
	"log/slog"

	"markethub/config"
	"markethub/internal/mocks"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
			IdleDaysDefault: 30,
		},
	}
}

// newTxManager wires a TransactionManager mock that always runs the supplied
// function against a fully-populated repository factory.
func newTxManager() (*mocks.TransactionManager, *mocks.RepositoryFactory) {
	factory := mocks.NewRepositoryFactory()
	txManager := &mocks.TransactionManager{Factory: factory}
	txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)

	return txManager, factory
}
