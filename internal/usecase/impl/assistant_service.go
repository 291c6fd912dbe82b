package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "markethub/internal/delivery/context"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/domain/service"
	"markethub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assistantPromptFormat frames the relayed conversation for the provider.
// The %s placeholder receives the schema context built by schemaContext.
const assistantPromptFormat = `You are a helpful assistant with access to the MarketHub database.
You can answer questions about accounts, products, inventory and activity.

%s

When users ask about data, you can help them understand the database or suggest SQL queries.
Be friendly and helpful in your responses.`

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	completer  service.ChatCompleter
	schemaRepo repository.SchemaRepository
	logger     *slog.Logger
}

// AssistantServiceParams holds dependencies for assistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Completer  service.ChatCompleter
	SchemaRepo repository.SchemaRepository
	Logger     *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		completer:  params.Completer,
		schemaRepo: params.SchemaRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat relays one user message to the LLM provider.
func (srv *assistantService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Message is required.")
	}

	if !srv.completer.Configured() {
		return nil, domainerrors.ErrAssistantNotConfigured
	}

	reply, err := srv.completer.Complete(ctx, fmt.Sprintf(assistantPromptFormat, srv.schemaContext(ctx)), message)
	if err != nil {
		srv.log(ctx).Error("Chat relay failed", slog.Any("error", err))

		return nil, err
	}

	return &usecase.ChatOutput{Reply: reply}, nil
}

// schemaContext lists the database tables for the system prompt. Schema
// lookup failures degrade the context rather than failing the chat.
func (srv *assistantService) schemaContext(ctx context.Context) string {
	context := "Available database tables: "

	tables, err := srv.schemaRepo.TableNames(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load schema context for chat", slog.Any("error", err))

		return context + "unavailable."
	}
	if len(tables) == 0 {
		return context + "none found."
	}

	return context + strings.Join(tables, ", ")
}

// RawQuery executes a read-only SQL passthrough. Only statements starting
// with SELECT pass the guard; a trailing semicolon is tolerated.
func (srv *assistantService) RawQuery(ctx context.Context, input *usecase.QueryInput) (*usecase.QueryOutput, error) {
	query := strings.TrimSpace(input.Query)
	query = strings.TrimSuffix(query, ";")

	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Query is required.")
	}
	if !strings.HasPrefix(strings.ToLower(query), "select") {
		srv.log(ctx).Warn("Rejected non-SELECT passthrough query")

		return nil, domainerrors.ErrQueryNotAllowed
	}

	results, err := srv.schemaRepo.RawSelect(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Passthrough query failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute passthrough query")
	}

	return &usecase.QueryOutput{Results: results, Count: len(results)}, nil
}

// DBInfo describes every table of the configured database.
func (srv *assistantService) DBInfo(ctx context.Context) (*usecase.DBInfoOutput, error) {
	tables, err := srv.schemaRepo.TableNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	schema := make(map[string][]repository.ColumnInfo, len(tables))
	for _, table := range tables {
		columns, colErr := srv.schemaRepo.TableColumns(ctx, table)
		if colErr != nil {
			return nil, errors.Wrapf(colErr, "failed to describe table %s", table)
		}
		schema[table] = columns
	}

	return &usecase.DBInfoOutput{Tables: tables, Schema: schema}, nil
}
