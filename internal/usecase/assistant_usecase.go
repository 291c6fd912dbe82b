package usecase

import (
	"context"

	"markethub/internal/domain/repository"
)

// ChatInput carries one user message for the LLM relay.
type ChatInput struct {
	Message string
}

// ChatOutput is the provider's reply text.
type ChatOutput struct {
	Reply string `json:"reply"`
}

// QueryInput carries a raw read-only SQL statement.
type QueryInput struct {
	Query string
}

// QueryOutput returns passthrough query rows and their count.
type QueryOutput struct {
	Results []map[string]any `json:"results"`
	Count   int              `json:"count"`
}

// DBInfoOutput describes the database schema for the assistant UI.
type DBInfoOutput struct {
	Tables []string                           `json:"tables"`
	Schema map[string][]repository.ColumnInfo `json:"schema"`
}

// AssistantUsecase defines the LLM chat relay and the advanced read-only
// database access endpoints.
type AssistantUsecase interface {
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	RawQuery(ctx context.Context, input *QueryInput) (*QueryOutput, error)
	DBInfo(ctx context.Context) (*DBInfoOutput, error)
}
