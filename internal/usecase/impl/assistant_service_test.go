package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/repository"
	"markethub/internal/mocks"
	"markethub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssistantService(completer *mocks.ChatCompleter, schemaRepo *mocks.SchemaRepository) usecase.AssistantUsecase {
	return NewAssistantService(AssistantServiceParams{
		Completer:  completer,
		SchemaRepo: schemaRepo,
		Logger:     testLogger(),
	})
}

func TestAssistantService_Chat_Success(t *testing.T) {
	completer := new(mocks.ChatCompleter)
	schemaRepo := new(mocks.SchemaRepository)
	svc := newAssistantService(completer, schemaRepo)

	schemaRepo.On("TableNames", mock.Anything).Return([]string{"accounts", "products"}, nil)
	completer.On("Configured").Return(true)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Available database tables: accounts, products")
	}), "hello there").
		Return("Hi! How can I help?", nil)

	out, err := svc.Chat(context.Background(), &usecase.ChatInput{Message: "  hello there  "})

	require.NoError(t, err)
	assert.Equal(t, "Hi! How can I help?", out.Reply)
}

func TestAssistantService_Chat_SchemaFailureDegradesPrompt(t *testing.T) {
	completer := new(mocks.ChatCompleter)
	schemaRepo := new(mocks.SchemaRepository)
	svc := newAssistantService(completer, schemaRepo)

	schemaRepo.On("TableNames", mock.Anything).Return(nil, assert.AnError)
	completer.On("Configured").Return(true)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Available database tables: unavailable.")
	}), "hello").
		Return("Hello!", nil)

	out, err := svc.Chat(context.Background(), &usecase.ChatInput{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "Hello!", out.Reply)
}

func TestAssistantService_Chat_NotConfigured(t *testing.T) {
	completer := new(mocks.ChatCompleter)
	svc := newAssistantService(completer, new(mocks.SchemaRepository))

	completer.On("Configured").Return(false)

	_, err := svc.Chat(context.Background(), &usecase.ChatInput{Message: "hello"})

	assert.ErrorIs(t, err, domainerrors.ErrAssistantNotConfigured)
	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssistantService_Chat_EmptyMessage(t *testing.T) {
	svc := newAssistantService(new(mocks.ChatCompleter), new(mocks.SchemaRepository))

	_, err := svc.Chat(context.Background(), &usecase.ChatInput{Message: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_RawQuery_SelectOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		allowed bool
	}{
		{name: "plain select", query: "SELECT * FROM products", allowed: true},
		{name: "lowercase with trailing semicolon", query: "select 1;", allowed: true},
		{name: "leading whitespace", query: "   SELECT email FROM accounts", allowed: true},
		{name: "insert", query: "INSERT INTO accounts VALUES (1)", allowed: false},
		{name: "update", query: "UPDATE products SET price = 0", allowed: false},
		{name: "delete", query: "DELETE FROM products", allowed: false},
		{name: "drop", query: "DROP TABLE products", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schemaRepo := new(mocks.SchemaRepository)
			svc := newAssistantService(new(mocks.ChatCompleter), schemaRepo)

			if tt.allowed {
				schemaRepo.On("RawSelect", mock.Anything, mock.Anything).
					Return([]map[string]any{}, nil)
			}

			_, err := svc.RawQuery(context.Background(), &usecase.QueryInput{Query: tt.query})

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrQueryNotAllowed)
				schemaRepo.AssertNotCalled(t, "RawSelect", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAssistantService_RawQuery_ReturnsRowsAndCount(t *testing.T) {
	schemaRepo := new(mocks.SchemaRepository)
	svc := newAssistantService(new(mocks.ChatCompleter), schemaRepo)

	rows := []map[string]any{
		{"email": "a@example.com"},
		{"email": "b@example.com"},
	}
	schemaRepo.On("RawSelect", mock.Anything, "SELECT email FROM accounts").Return(rows, nil)

	out, err := svc.RawQuery(context.Background(), &usecase.QueryInput{Query: "SELECT email FROM accounts;"})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, rows, out.Results)
}

func TestAssistantService_DBInfo(t *testing.T) {
	schemaRepo := new(mocks.SchemaRepository)
	svc := newAssistantService(new(mocks.ChatCompleter), schemaRepo)

	schemaRepo.On("TableNames", mock.Anything).Return([]string{"accounts", "products"}, nil)
	schemaRepo.On("TableColumns", mock.Anything, "accounts").
		Return([]repository.ColumnInfo{{Name: "email", Type: "varchar(255)", Key: "PRI"}}, nil)
	schemaRepo.On("TableColumns", mock.Anything, "products").
		Return([]repository.ColumnInfo{{Name: "id", Type: "bigint", Key: "PRI"}}, nil)

	out, err := svc.DBInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"accounts", "products"}, out.Tables)
	require.Len(t, out.Schema, 2)
	assert.Equal(t, "email", out.Schema["accounts"][0].Name)
}
