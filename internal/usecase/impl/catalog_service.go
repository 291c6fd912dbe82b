package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"markethub/config"
	deliverycontext "markethub/internal/delivery/context"
	"markethub/internal/domain/entity"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	productRepo     repository.ProductRepository
	defaultPageSize int
	maxPageSize     int
	idleDaysDefault int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	catalog := params.Config.Catalog

	return &catalogService{
		txManager:       params.TxManager,
		productRepo:     params.ProductRepo,
		defaultPageSize: catalog.DefaultPageSize,
		maxPageSize:     catalog.MaxPageSize,
		idleDaysDefault: catalog.IdleDaysDefault,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateProductFields(sku, title string, price float64, quantity int) error {
	switch {
	case strings.TrimSpace(sku) == "":
		return domainerrors.ErrValidationFailed.WithDetails("SKU is required.")
	case strings.TrimSpace(title) == "":
		return domainerrors.ErrValidationFailed.WithDetails("Title is required.")
	case price < 0:
		return domainerrors.ErrValidationFailed.WithDetails("Price must not be negative.")
	case quantity < 0:
		return domainerrors.ErrValidationFailed.WithDetails("Quantity must not be negative.")
	default:
		return nil
	}
}

// CreateProduct adds a catalog item after checking SKU uniqueness inside the
// write transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.SKU, input.Title, input.Price, input.Quantity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		SKU:         strings.TrimSpace(input.SKU),
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		taken, skuErr := productRepo.SKUExists(ctx, product.SKU, 0)
		if skuErr != nil {
			return errors.Wrap(skuErr, "failed to check SKU availability")
		}
		if taken {
			return domainerrors.ErrSKUTaken
		}

		return productRepo.Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Warn("Product creation failed", slog.String("sku", product.SKU), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Int64("id", product.ID), slog.String("sku", product.SKU))

	return product, nil
}

// GetProduct loads a product by ID, archived or not.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// UpdateProduct overwrites the mutable fields. A price change appends a
// history row in the same transaction as the update itself.
func (srv *catalogService) UpdateProduct(
	ctx context.Context, id int64, input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	if err := validateProductFields(input.SKU, input.Title, input.Price, input.Quantity); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(findErr, "failed to load product for update")
		}

		sku := strings.TrimSpace(input.SKU)
		taken, skuErr := productRepo.SKUExists(ctx, sku, id)
		if skuErr != nil {
			return errors.Wrap(skuErr, "failed to check SKU availability")
		}
		if taken {
			return domainerrors.ErrSKUTaken
		}

		oldPrice := product.Price
		now := time.Now().UTC()

		product.SKU = sku
		product.Title = strings.TrimSpace(input.Title)
		product.Category = strings.TrimSpace(input.Category)
		product.Price = input.Price
		product.Quantity = input.Quantity
		product.Description = input.Description
		product.ImageURL = input.ImageURL
		product.UpdatedAt = now

		if updErr := productRepo.Update(ctx, product); updErr != nil {
			return errors.Wrap(updErr, "failed to update product")
		}

		if oldPrice != input.Price {
			histErr := repoFactory.PriceHistoryRepo().Append(ctx, &entity.PriceChange{
				ProductID: id,
				OldPrice:  oldPrice,
				NewPrice:  input.Price,
				ChangedAt: now,
			})
			if histErr != nil {
				return errors.Wrap(histErr, "failed to record price change")
			}
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Product update failed", slog.Int64("id", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// SearchProducts runs the conjunctive filter search with clamped 1-based
// pagination. A page past the end yields an empty slice with the real total.
func (srv *catalogService) SearchProducts(
	ctx context.Context, input *usecase.SearchProductsInput,
) (*usecase.SearchProductsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	perPage := input.PerPage
	if perPage <= 0 {
		perPage = srv.defaultPageSize
	}
	if perPage > srv.maxPageSize {
		perPage = srv.maxPageSize
	}

	filter := repository.ProductFilter{
		SKU:      input.SKU,
		Category: input.Category,
		Keyword:  input.Keyword,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	products, total, err := srv.productRepo.Search(ctx, filter, repository.PageRequest{Page: page, PerPage: perPage})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return &usecase.SearchProductsOutput{
		Products: products,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}

// ArchiveProduct soft-deletes a product unless open orders reference it.
func (srv *catalogService) ArchiveProduct(ctx context.Context, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for archiving")
		}

		open, err := productRepo.HasOpenOrders(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check open orders")
		}
		if open {
			return domainerrors.ErrOpenOrders
		}

		return productRepo.Archive(ctx, id)
	})
}

// InventoryValuation returns SUM(price*quantity) per category.
func (srv *catalogService) InventoryValuation(ctx context.Context) ([]*entity.CategoryValue, error) {
	values, err := srv.productRepo.ValueByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute inventory valuation")
	}

	return values, nil
}

// IdleStock returns products untouched for more than the given number of
// days, defaulting the threshold from configuration.
func (srv *catalogService) IdleStock(ctx context.Context, days int) ([]*entity.IdleProduct, error) {
	if days <= 0 {
		days = srv.idleDaysDefault
	}

	idle, err := srv.productRepo.FindIdleStock(ctx, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find idle stock")
	}

	return idle, nil
}
