package model

import "time"

// ProductModel mirrors the 'products' table. SKU uniqueness is enforced both
// here and by an application-level check inside the write transaction.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	SKU         string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Category    string  `gorm:"type:varchar(100);index"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Quantity    int     `gorm:"not null;default:0"`
	Description string  `gorm:"type:text"`
	ImageURL    string  `gorm:"type:varchar(512)"`
	Archived    bool    `gorm:"not null;default:false;index"`
	IsSold      bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PriceHistoryModel mirrors the 'price_history' table, one row per price
// transition, written in the same transaction as the product update.
type PriceHistoryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID int64     `gorm:"not null;index"`
	OldPrice  float64   `gorm:"type:decimal(10,2);not null"`
	NewPrice  float64   `gorm:"type:decimal(10,2);not null"`
	ChangedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PriceHistoryModel) TableName() string {
	return "price_history"
}
