package usecase

import (
	"context"

	"markethub/internal/domain/entity"
)

// Metrics are the dashboard KPI counters.
type Metrics struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Disabled int64 `json:"disabled"`
}

// ChartLabel is one category label of the role chart.
type ChartLabel struct {
	Label string `json:"label"`
}

// ChartValue is one data point of the role chart.
type ChartValue struct {
	Value int64 `json:"value"`
}

// RoleChart is the role distribution in the shape the dashboard chart widget
// consumes.
type RoleChart struct {
	Categories []ChartLabel `json:"categories"`
	Dataset    []ChartValue `json:"dataset"`
}

// AnalyzeInput carries a natural-language dashboard question.
type AnalyzeInput struct {
	Question string
}

// AnalyzeOutput is the canned-query analysis result. Value is nil when the
// question matched no known intent; Answer then lists the supported phrases.
type AnalyzeOutput struct {
	Answer string `json:"answer"`
	Value  *int64 `json:"value,omitempty"`
	Label  string `json:"label,omitempty"`
}

// DashboardUsecase defines the read-only analytics operations plus the
// keyword-dispatched chat analysis.
type DashboardUsecase interface {
	Metrics(ctx context.Context) (*Metrics, error)
	RoleChart(ctx context.Context) (*RoleChart, error)
	RecentAccounts(ctx context.Context, limit int) ([]*entity.Account, error)
	Analyze(ctx context.Context, email string, input *AnalyzeInput) (*AnalyzeOutput, error)
}
