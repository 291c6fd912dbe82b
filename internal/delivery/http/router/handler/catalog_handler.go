package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"markethub/internal/delivery/http/response"
	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the product and inventory endpoints.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	SKU         string  `json:"sku" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// Create adds a product to the catalog.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SKU:         req.SKU,
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Get serves a single product by ID.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Update overwrites a product's mutable fields.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &usecase.UpdateProductInput{
		SKU:         req.SKU,
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Search runs the filtered, paginated catalog search. All filters come from
// query parameters and combine conjunctively.
func (h *CatalogHandler) Search(c echo.Context) error {
	input := &usecase.SearchProductsInput{
		SKU:      optionalString(c.QueryParam("sku")),
		Category: optionalString(c.QueryParam("category")),
		Keyword:  optionalString(c.QueryParam("q")),
		MinPrice: optionalFloat(c.QueryParam("min_price")),
		MaxPrice: optionalFloat(c.QueryParam("max_price")),
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))

	output, err := h.uc.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": output.Products,
		"total":    output.Total,
		"page":     output.Page,
		"per_page": output.PerPage,
	}, "")
}

// Archive soft-deletes a product.
func (h *CatalogHandler) Archive(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.ArchiveProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product archived")
}

// Valuation serves the per-category inventory value report.
func (h *CatalogHandler) Valuation(c echo.Context) error {
	values, err := h.uc.InventoryValuation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, values, "")
}

// IdleStock serves the idle-stock report. The days query parameter
// overrides the configured default threshold.
func (h *CatalogHandler) IdleStock(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	idle, err := h.uc.IdleStock(c.Request().Context(), days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, idle, "")
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	return id, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func optionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &parsed
}
