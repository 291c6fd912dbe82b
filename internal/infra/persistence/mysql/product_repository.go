package mysql

import (
	"context"

	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settledOrderStatuses are the order states that do NOT block archiving a
// product. Anything else, including a NULL status, counts as open.
var settledOrderStatuses = []string{"completed", "closed", "cancelled"}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		SKU:         product.SKU,
		Title:       product.Title,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Archived:    product.Archived,
		IsSold:      product.IsSold,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ID,
		SKU:         productM.SKU,
		Title:       productM.Title,
		Category:    productM.Category,
		Price:       productM.Price,
		Quantity:    productM.Quantity,
		Description: productM.Description,
		ImageURL:    productM.ImageURL,
		Archived:    productM.Archived,
		IsSold:      productM.IsSold,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
}

// Create persists a new product and fills in its generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSKUTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its surrogate key, archived or not.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Update overwrites the mutable product columns and bumps updated_at.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"sku":         product.SKU,
			"title":       product.Title,
			"category":    product.Category,
			"price":       product.Price,
			"quantity":    product.Quantity,
			"description": product.Description,
			"image_url":   product.ImageURL,
			"is_sold":     product.IsSold,
			"updated_at":  product.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSKUTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	return nil
}

// SKUExists reports whether a SKU is already used by a product other than
// excludeID.
func (repo *productRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ?", sku)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check SKU existence")
	}

	return count > 0, nil
}

// Search returns the page slice and the total match count for the filter.
// All set predicates are conjunctive on top of archived = 0; results are
// ordered by updated_at descending.
func (repo *productRepository) Search(
	ctx context.Context, filter repository.ProductFilter, page repository.PageRequest,
) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("archived = ?", false)

	if filter.SKU != nil {
		query = query.Where("sku LIKE ?", "%"+*filter.SKU+"%")
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Keyword != nil {
		pattern := "%" + *filter.Keyword + "%"
		query = query.Where("(title LIKE ? OR description LIKE ?)", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count search matches")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("updated_at DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Archive soft-deletes a product and bumps updated_at.
func (repo *productRepository) Archive(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"archived":   true,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive product")
	}

	return nil
}

// HasOpenOrders probes the externally-managed order tables for open orders
// referencing the product. The check fails open: missing tables or query
// errors report no open orders rather than blocking the archive.
func (repo *productRepository) HasOpenOrders(ctx context.Context, id int64) (bool, error) {
	var tableCount int64
	err := repo.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM information_schema.tables
		 WHERE table_schema = DATABASE() AND table_name IN ('orders', 'order_items')`,
	).Scan(&tableCount).Error
	if err != nil || tableCount < 2 {
		return false, nil
	}

	var open int64
	err = repo.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE oi.product_id = ? AND COALESCE(o.status, 'open') NOT IN ?`,
		id, settledOrderStatuses,
	).Scan(&open).Error
	if err != nil {
		return false, nil
	}

	return open > 0, nil
}

// ValueByCategory returns SUM(price*quantity) per category for non-archived
// products, ordered by category name.
func (repo *productRepository) ValueByCategory(ctx context.Context) ([]*entity.CategoryValue, error) {
	var values []*entity.CategoryValue

	if err := repo.db.WithContext(ctx).Raw(
		`SELECT category, SUM(price * quantity) AS total_value
		 FROM products WHERE archived = 0
		 GROUP BY category ORDER BY category`,
	).Scan(&values).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute value by category")
	}

	return values, nil
}

// FindIdleStock returns non-archived products untouched for more than the
// given number of days, longest-idle first, larger stock first on ties.
func (repo *productRepository) FindIdleStock(ctx context.Context, days int) ([]*entity.IdleProduct, error) {
	var idle []*entity.IdleProduct

	if err := repo.db.WithContext(ctx).Raw(
		`SELECT id AS product_id, sku, title, category, price, quantity,
		        DATEDIFF(NOW(), COALESCE(updated_at, created_at)) AS days_idle
		 FROM products
		 WHERE archived = 0
		   AND DATEDIFF(NOW(), COALESCE(updated_at, created_at)) > ?
		 ORDER BY days_idle DESC, quantity DESC`,
		days,
	).Scan(&idle).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find idle stock")
	}

	return idle, nil
}

// priceHistoryRepository implements the repository.PriceHistoryRepository interface.
type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository is the constructor for priceHistoryRepository.
func NewPriceHistoryRepository(db *gorm.DB) repository.PriceHistoryRepository {
	return &priceHistoryRepository{
		db: db,
	}
}

// Append writes a single price change row.
func (repo *priceHistoryRepository) Append(ctx context.Context, change *entity.PriceChange) error {
	changeM := &model.PriceHistoryModel{
		ProductID: change.ProductID,
		OldPrice:  change.OldPrice,
		NewPrice:  change.NewPrice,
		ChangedAt: change.ChangedAt,
	}

	if err := repo.db.WithContext(ctx).Create(changeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append price history")
	}

	change.ID = changeM.ID

	return nil
}
