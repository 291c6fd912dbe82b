package impl

import (
	"context"
	"testing"
	"time"

	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/mocks"
	"markethub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(txManager *mocks.TransactionManager, productRepo *mocks.ProductRepository) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Config:      testConfig(),
		Logger:      testLogger(),
	})
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	factory.Products.On("SKUExists", mock.Anything, "SKU-1", int64(0)).Return(false, nil)
	factory.Products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.SKU == "SKU-1" && p.Title == "Widget" && !p.Archived
	})).Return(nil)

	product, err := svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		SKU:      " SKU-1 ",
		Title:    "Widget",
		Category: "tools",
		Price:    9.99,
		Quantity: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "SKU-1", product.SKU)
	factory.Products.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_DuplicateSKU(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	factory.Products.On("SKUExists", mock.Anything, "SKU-1", int64(0)).Return(true, nil)

	_, err := svc.CreateProduct(context.Background(), &usecase.CreateProductInput{
		SKU: "SKU-1", Title: "Widget", Price: 1, Quantity: 1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrSKUTaken)
	factory.Products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{name: "blank sku", input: &usecase.CreateProductInput{Title: "Widget", Price: 1, Quantity: 1}},
		{name: "blank title", input: &usecase.CreateProductInput{SKU: "SKU-1", Price: 1, Quantity: 1}},
		{name: "negative price", input: &usecase.CreateProductInput{SKU: "SKU-1", Title: "Widget", Price: -1, Quantity: 1}},
		{name: "negative quantity", input: &usecase.CreateProductInput{SKU: "SKU-1", Title: "Widget", Price: 1, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager, _ := newTxManager()
			svc := newCatalogService(txManager, new(mocks.ProductRepository))

			_, err := svc.CreateProduct(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogService_UpdateProduct_PriceChangeRecordsHistory(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	existing := &entity.Product{
		ID: 42, SKU: "SKU-1", Title: "Widget", Price: 10.00, Quantity: 5,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	factory.Products.On("FindByID", mock.Anything, int64(42)).Return(existing, nil)
	factory.Products.On("SKUExists", mock.Anything, "SKU-1", int64(42)).Return(false, nil)
	factory.Products.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == 42 && p.Price == 12.50
	})).Return(nil)
	factory.PriceHistory.On("Append", mock.Anything, mock.MatchedBy(func(c *entity.PriceChange) bool {
		return c.ProductID == 42 && c.OldPrice == 10.00 && c.NewPrice == 12.50
	})).Return(nil)

	product, err := svc.UpdateProduct(context.Background(), 42, &usecase.UpdateProductInput{
		SKU: "SKU-1", Title: "Widget", Price: 12.50, Quantity: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.50, product.Price)
	factory.PriceHistory.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct_SamePriceSkipsHistory(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	existing := &entity.Product{ID: 42, SKU: "SKU-1", Title: "Widget", Price: 10.00, Quantity: 5}

	factory.Products.On("FindByID", mock.Anything, int64(42)).Return(existing, nil)
	factory.Products.On("SKUExists", mock.Anything, "SKU-1", int64(42)).Return(false, nil)
	factory.Products.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateProduct(context.Background(), 42, &usecase.UpdateProductInput{
		SKU: "SKU-1", Title: "Widget", Price: 10.00, Quantity: 8,
	})

	require.NoError(t, err)
	factory.PriceHistory.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	factory.Products.On("FindByID", mock.Anything, int64(7)).Return(nil, repository.ErrProductNotFound)

	_, err := svc.UpdateProduct(context.Background(), 7, &usecase.UpdateProductInput{
		SKU: "SKU-7", Title: "Gone", Price: 1, Quantity: 1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_SearchProducts_ClampsPagination(t *testing.T) {
	txManager, _ := newTxManager()
	productRepo := new(mocks.ProductRepository)
	svc := newCatalogService(txManager, productRepo)

	productRepo.On("Search", mock.Anything, mock.Anything,
		repository.PageRequest{Page: 1, PerPage: 100}).
		Return([]*entity.Product{}, int64(0), nil)

	out, err := svc.SearchProducts(context.Background(), &usecase.SearchProductsInput{
		Page:    -3,
		PerPage: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 100, out.PerPage)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_SearchProducts_PassesFilterThrough(t *testing.T) {
	txManager, _ := newTxManager()
	productRepo := new(mocks.ProductRepository)
	svc := newCatalogService(txManager, productRepo)

	category := "tools"
	minPrice := 5.0

	productRepo.On("Search", mock.Anything,
		repository.ProductFilter{Category: &category, MinPrice: &minPrice},
		repository.PageRequest{Page: 2, PerPage: 10}).
		Return([]*entity.Product{{ID: 1}}, int64(11), nil)

	out, err := svc.SearchProducts(context.Background(), &usecase.SearchProductsInput{
		Category: &category,
		MinPrice: &minPrice,
		Page:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), out.Total)
	assert.Len(t, out.Products, 1)
}

func TestCatalogService_ArchiveProduct_BlockedByOpenOrders(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	factory.Products.On("FindByID", mock.Anything, int64(9)).Return(&entity.Product{ID: 9}, nil)
	factory.Products.On("HasOpenOrders", mock.Anything, int64(9)).Return(true, nil)

	err := svc.ArchiveProduct(context.Background(), 9)

	assert.ErrorIs(t, err, domainerrors.ErrOpenOrders)
	factory.Products.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything)
}

func TestCatalogService_ArchiveProduct_Success(t *testing.T) {
	txManager, factory := newTxManager()
	svc := newCatalogService(txManager, new(mocks.ProductRepository))

	factory.Products.On("FindByID", mock.Anything, int64(9)).Return(&entity.Product{ID: 9}, nil)
	factory.Products.On("HasOpenOrders", mock.Anything, int64(9)).Return(false, nil)
	factory.Products.On("Archive", mock.Anything, int64(9)).Return(nil)

	err := svc.ArchiveProduct(context.Background(), 9)

	require.NoError(t, err)
	factory.Products.AssertExpectations(t)
}

func TestCatalogService_IdleStock_DefaultsThreshold(t *testing.T) {
	txManager, _ := newTxManager()
	productRepo := new(mocks.ProductRepository)
	svc := newCatalogService(txManager, productRepo)

	productRepo.On("FindIdleStock", mock.Anything, 30).
		Return([]*entity.IdleProduct{{ProductID: 1, DaysIdle: 45}}, nil)

	idle, err := svc.IdleStock(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, idle, 1)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_InventoryValuation(t *testing.T) {
	txManager, _ := newTxManager()
	productRepo := new(mocks.ProductRepository)
	svc := newCatalogService(txManager, productRepo)

	productRepo.On("ValueByCategory", mock.Anything).
		Return([]*entity.CategoryValue{{Category: "tools", TotalValue: 99.5}}, nil)

	values, err := svc.InventoryValuation(context.Background())

	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "tools", values[0].Category)
}
