package handler

import (
	"log/slog"
	"net/http"

	"markethub/internal/delivery/http/response"
	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler holds dependencies for the chat relay and the advanced
// database access endpoints.
type AssistantHandler struct {
	uc     usecase.AssistantUsecase
	logger *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: logger,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type queryRequest struct {
	Query string `json:"query" validate:"required"`
}

// Chat relays one message to the LLM provider.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Chat(c.Request().Context(), &usecase.ChatInput{Message: req.Message})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Query executes a read-only SQL passthrough statement.
func (h *AssistantHandler) Query(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RawQuery(c.Request().Context(), &usecase.QueryInput{Query: req.Query})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// DBInfo describes the database schema.
func (h *AssistantHandler) DBInfo(c echo.Context) error {
	output, err := h.uc.DBInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
