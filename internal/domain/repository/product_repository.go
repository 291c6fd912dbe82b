package repository

import (
	"context"
	"errors"

	"markethub/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter composes the optional search predicates. All set predicates
// are combined conjunctively on top of the mandatory archived = 0 condition.
type ProductFilter struct {
	SKU      *string  // Partial match against SKU.
	Category *string  // Exact category match.
	Keyword  *string  // Partial match against title OR description.
	MinPrice *float64 // Inclusive lower price bound.
	MaxPrice *float64 // Inclusive upper price bound.
}

// PageRequest describes a 1-based page slice. A page past the end of the
// result set yields an empty row set with the correct total, not an error.
type PageRequest struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page, clamping page numbers below 1.
func (p PageRequest) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * p.PerPage
}

// ProductRepository defines the catalog persistence operations.
type ProductRepository interface {
	// Create persists a new product and fills in its generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its surrogate key, archived or not.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Update overwrites the mutable product columns and bumps updated_at.
	Update(ctx context.Context, product *entity.Product) error

	// SKUExists reports whether a SKU is already used by a product other than
	// excludeID. Pass 0 to check against all products.
	SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error)

	// Search returns the page slice and the total match count for the filter,
	// excluding archived products, ordered by updated_at descending.
	Search(ctx context.Context, filter ProductFilter, page PageRequest) ([]*entity.Product, int64, error)

	// Archive soft-deletes a product.
	Archive(ctx context.Context, id int64) error

	// HasOpenOrders probes externally-defined order tables for open orders
	// referencing the product. Missing tables or query errors report false:
	// the check fails open in favour of availability.
	HasOpenOrders(ctx context.Context, id int64) (bool, error)

	// ValueByCategory returns SUM(price*quantity) per category for
	// non-archived products, ordered by category name.
	ValueByCategory(ctx context.Context) ([]*entity.CategoryValue, error)

	// FindIdleStock returns non-archived products untouched for more than the
	// given number of days, ordered by idle duration then quantity, both
	// descending.
	FindIdleStock(ctx context.Context, days int) ([]*entity.IdleProduct, error)
}

// PriceHistoryRepository appends price transitions. Rows are written in the
// same transaction as the corresponding product update.
type PriceHistoryRepository interface {
	// Append writes a single price change row.
	Append(ctx context.Context, change *entity.PriceChange) error
}
