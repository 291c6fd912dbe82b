package usecase

import (
	"context"

	"markethub/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	SKU         string
	Title       string
	Category    string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
}

// UpdateProductInput overwrites the mutable fields of a product. A price
// different from the stored one also appends a price-history row in the same
// transaction.
type UpdateProductInput struct {
	SKU         string
	Title       string
	Category    string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
}

// SearchProductsInput composes the optional, conjunctive search predicates
// with 1-based pagination.
type SearchProductsInput struct {
	SKU      *string
	Category *string
	Keyword  *string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PerPage  int
}

// SearchProductsOutput is a page slice plus the total match count.
type SearchProductsOutput struct {
	Products []*entity.Product
	Total    int64
	Page     int
	PerPage  int
}

// CatalogUsecase defines the product and inventory operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *UpdateProductInput) (*entity.Product, error)
	SearchProducts(ctx context.Context, input *SearchProductsInput) (*SearchProductsOutput, error)
	ArchiveProduct(ctx context.Context, id int64) error
	InventoryValuation(ctx context.Context) ([]*entity.CategoryValue, error)
	IdleStock(ctx context.Context, days int) ([]*entity.IdleProduct, error)
}
