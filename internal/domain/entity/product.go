// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is a catalog item. SKU is the intended-unique business key and is
// checked by the application before writes; archived products stay in the
// table but are excluded from search and reports.
type Product struct {
	ID          int64     // Surrogate primary key.
	SKU         string    // Business key, partial-matchable in search.
	Title       string    // Display title.
	Category    string    // Free-form category label.
	Price       float64   // Stored as decimal(10,2).
	Quantity    int       // Units in stock.
	Description string    // Long description, keyword-searchable.
	ImageURL    string    // Optional image location.
	Archived    bool      // Soft-delete flag.
	IsSold      bool      // Marked when the item has been sold out.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// PriceChange is an append-only record of a product price transition. Writing
// it happens in the same transaction as the price update itself.
type PriceChange struct {
	ID        int64     // Surrogate primary key.
	ProductID int64     // The product whose price changed.
	OldPrice  float64   // Price before the update.
	NewPrice  float64   // Price after the update.
	ChangedAt time.Time // When the change was recorded.
}

// CategoryValue is one row of the inventory valuation report:
// SUM(price * quantity) for all non-archived products in a category.
type CategoryValue struct {
	Category   string  `json:"category"`
	TotalValue float64 `json:"total_value"`
}

// IdleProduct is one row of the idle-stock report. DaysIdle counts full days
// since the product was last touched (updated_at, falling back to created_at).
type IdleProduct struct {
	ProductID int64   `json:"product_id"`
	SKU       string  `json:"sku"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	DaysIdle  int     `json:"days_idle"`
}
