package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "markethub/internal/delivery/context"
	"markethub/internal/domain/entity"
	"markethub/internal/domain/repository"
	"markethub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecentLimit = 10
	newCustomerWindow  = 30 * 24 * time.Hour
)

// analysisIntent is one entry of the ordered keyword dispatch table. The
// first intent whose keyword occurs in the lower-cased question wins, so
// more specific phrases must come before their substrings ("new customers"
// before "customers").
type analysisIntent struct {
	keyword string
	label   string
	count   func(ctx context.Context, repo repository.AccountRepository) (int64, error)
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	accountRepo  repository.AccountRepository
	activityRepo repository.ActivityLogRepository
	intents      []analysisIntent
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	ActivityRepo repository.ActivityLogRepository
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		accountRepo:  params.AccountRepo,
		activityRepo: params.ActivityRepo,
		intents:      buildAnalysisIntents(),
		logger:       params.Logger,
	}
}

func buildAnalysisIntents() []analysisIntent {
	return []analysisIntent{
		{
			keyword: "new customers",
			label:   "New customers (30d)",
			count: func(ctx context.Context, repo repository.AccountRepository) (int64, error) {
				since := time.Now().UTC().Add(-newCustomerWindow)

				return repo.CountRegisteredSince(ctx, entity.RoleCustomer, since)
			},
		},
		{
			keyword: "active users",
			label:   "Total active users",
			count: func(ctx context.Context, repo repository.AccountRepository) (int64, error) {
				return repo.CountByStatus(ctx, entity.StatusActive)
			},
		},
		{
			keyword: "merchants",
			label:   "Total merchants",
			count: func(ctx context.Context, repo repository.AccountRepository) (int64, error) {
				return countRole(ctx, repo, entity.RoleMerchant)
			},
		},
		{
			keyword: "customers",
			label:   "Total customers",
			count: func(ctx context.Context, repo repository.AccountRepository) (int64, error) {
				return countRole(ctx, repo, entity.RoleCustomer)
			},
		},
		{
			keyword: "disabled",
			label:   "Disabled accounts",
			count: func(ctx context.Context, repo repository.AccountRepository) (int64, error) {
				return repo.CountByStatus(ctx, entity.StatusDisabled)
			},
		},
	}
}

func countRole(ctx context.Context, repo repository.AccountRepository, role entity.Role) (int64, error) {
	counts, err := repo.CountByRole(ctx)
	if err != nil {
		return 0, err
	}

	return counts[role], nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Metrics returns the dashboard KPI counters.
func (srv *dashboardService) Metrics(ctx context.Context) (*usecase.Metrics, error) {
	total, err := srv.accountRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	active, err := srv.accountRepo.CountByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active accounts")
	}

	disabled, err := srv.accountRepo.CountByStatus(ctx, entity.StatusDisabled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count disabled accounts")
	}

	return &usecase.Metrics{Total: total, Active: active, Disabled: disabled}, nil
}

// RoleChart returns the role distribution in a stable customer-then-merchant
// order, including zero-count roles.
func (srv *dashboardService) RoleChart(ctx context.Context) (*usecase.RoleChart, error) {
	counts, err := srv.accountRepo.CountByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by role")
	}

	chart := &usecase.RoleChart{}
	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleMerchant} {
		chart.Categories = append(chart.Categories, usecase.ChartLabel{Label: role.String()})
		chart.Dataset = append(chart.Dataset, usecase.ChartValue{Value: counts[role]})
	}

	return chart, nil
}

// RecentAccounts returns the newest accounts, newest first.
func (srv *dashboardService) RecentAccounts(ctx context.Context, limit int) ([]*entity.Account, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	accounts, err := srv.accountRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent accounts")
	}

	return accounts, nil
}

// Analyze answers a natural-language question by keyword dispatch over the
// canned intents. Every attempt is audited, matched or not.
func (srv *dashboardService) Analyze(
	ctx context.Context, email string, input *usecase.AnalyzeInput,
) (*usecase.AnalyzeOutput, error) {
	question := strings.TrimSpace(input.Question)

	if err := srv.activityRepo.Append(ctx, &entity.ActivityLog{
		Email:       entity.NormalizeEmail(email),
		Activity:    entity.ActivityAnalysis,
		Description: question,
		OccurredAt:  time.Now().UTC(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to audit analysis request")
	}

	lowered := strings.ToLower(question)
	for _, intent := range srv.intents {
		if !strings.Contains(lowered, intent.keyword) {
			continue
		}

		value, err := intent.count(ctx, srv.accountRepo)
		if err != nil {
			srv.log(ctx).Error("Analysis count failed",
				slog.String("intent", intent.keyword), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to run analysis query")
		}

		return &usecase.AnalyzeOutput{
			Answer: fmt.Sprintf("%s: %d", intent.label, value),
			Value:  &value,
			Label:  intent.label,
		}, nil
	}

	srv.log(ctx).Debug("Analysis question matched no intent", slog.String("question", question))

	return &usecase.AnalyzeOutput{
		Answer: `Query not understood. Try: "new customers", "active users", "merchants", "customers", "disabled"`,
	}, nil
}
