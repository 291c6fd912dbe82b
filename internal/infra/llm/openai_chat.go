// Package llm provides the chat relay backed by an OpenAI-compatible API.
package llm

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"

	"markethub/config"
	domainerrors "markethub/internal/domain/errors"
	"markethub/internal/domain/service"
)

const defaultModel = "gpt-3.5-turbo"

// openaiCompleter is a concrete implementation of the ChatCompleter interface.
// It talks to any endpoint speaking the OpenAI chat completion protocol, so a
// self-hosted gateway works through the apiBase setting.
type openaiCompleter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	configured  bool
	logger      *slog.Logger
}

// Params holds dependencies for the completer, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOpenAICompleter is the constructor for openaiCompleter. A missing API
// key yields a non-nil, unconfigured completer so the application can still
// start and report the misconfiguration per request.
func NewOpenAICompleter(params Params) service.ChatCompleter {
	completer := &openaiCompleter{
		model:  defaultModel,
		logger: params.Logger,
	}

	cfg := params.Config.OpenAI
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("OpenAI API key not configured, chat relay disabled")

		return completer
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.APIBase != "" {
		clientConfig.BaseURL = cfg.APIBase
	}
	if cfg.Model != "" {
		completer.model = cfg.Model
	}
	completer.temperature = cfg.Temperature
	completer.maxTokens = cfg.MaxTokens
	completer.client = openai.NewClientWithConfig(clientConfig)
	completer.configured = true

	return completer
}

// Configured reports whether the provider credentials are present.
func (c *openaiCompleter) Configured() bool {
	return c.configured
}

// Complete sends the system and user messages and returns the reply text.
func (c *openaiCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if !c.configured {
		return "", domainerrors.ErrAssistantNotConfigured
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", c.classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domainerrors.ErrAssistantUnavailable.WithDetails("provider returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyError maps provider failures onto the domain error taxonomy so the
// delivery layer can answer with a meaningful status.
func (c *openaiCompleter) classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return domainerrors.ErrAssistantAuth
		case http.StatusNotFound:
			return domainerrors.ErrAssistantModelNotFound
		}
	}

	c.logger.Error("Chat provider request failed", slog.Any("error", err))

	return domainerrors.ErrAssistantUnavailable.WithDetails(err.Error())
}
