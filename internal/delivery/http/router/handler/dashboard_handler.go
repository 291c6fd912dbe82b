package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"markethub/internal/delivery/http/middleware"
	"markethub/internal/delivery/http/response"
	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the analytics endpoints.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

type analyzeRequest struct {
	Question string `json:"question" validate:"required"`
}

// Overview serves the dashboard landing payload: metrics plus the most
// recent registrations in one round trip.
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	metrics, err := h.uc.Metrics(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	recent, err := h.uc.RecentAccounts(ctx, 0)
	if err != nil {
		return errors.WithStack(err)
	}

	recentViews := make([]*accountResponse, 0, len(recent))
	for _, account := range recent {
		recentViews = append(recentViews, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"metrics":      metrics,
		"recent_users": recentViews,
	}, "")
}

// Metrics serves the KPI counters.
func (h *DashboardHandler) Metrics(c echo.Context) error {
	metrics, err := h.uc.Metrics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, metrics, "")
}

// RoleChart serves the role distribution chart data.
func (h *DashboardHandler) RoleChart(c echo.Context) error {
	chart, err := h.uc.RoleChart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chart, "")
}

// RecentUsers serves the most recent registrations. The limit query
// parameter is optional.
func (h *DashboardHandler) RecentUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	accounts, err := h.uc.RecentAccounts(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*accountResponse, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ChatAnalyze answers a natural-language question via keyword dispatch.
func (h *DashboardHandler) ChatAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Analyze(c.Request().Context(), middleware.AccountEmail(c), &usecase.AnalyzeInput{
		Question: req.Question,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
