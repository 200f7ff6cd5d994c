package mistral

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/generation"
)

// chatCompletions is the subset of the openai-go chat service the generator uses.
type chatCompletions interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// TextGenerator implements generation.TextProvider against Mistral.
type TextGenerator struct {
	chat   chatCompletions
	model  string
	logger *slog.Logger
}

var _ generation.TextProvider = (*TextGenerator)(nil)

// NewTextGenerator creates a TextGenerator from LLM configuration.
// It fails with generation.ErrInvalidConfig when the key or model is missing.
func NewTextGenerator(logger *slog.Logger, cfg config.LLMConfig) (*TextGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.MistralAPIKey == "" {
		return nil, fmt.Errorf("%w: mistral API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.TextModel == "" {
		return nil, fmt.Errorf("%w: text model cannot be empty", generation.ErrInvalidConfig)
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.MistralAPIKey),
		option.WithBaseURL(cfg.MistralBaseURL),
		option.WithMaxRetries(0),
	)

	return newTextGenerator(&client.Chat.Completions, cfg.TextModel, logger), nil
}

func newTextGenerator(chat chatCompletions, model string, logger *slog.Logger) *TextGenerator {
	return &TextGenerator{
		chat:   chat,
		model:  model,
		logger: logger.With(slog.String("component", "mistral_text_generator")),
	}
}

// Model returns the configured model name.
func (g *TextGenerator) Model() string {
	return g.model
}

// GenerateJSON sends prompt as a single user message and returns the content
// of the first choice. Errors wrap generation.ErrProvider.
func (g *TextGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	g.logger.DebugContext(ctx, "sending chat completion request",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.chat.New(ctx, params)
	if err != nil {
		g.logger.ErrorContext(ctx, "chat completion request failed", "error", err)
		return "", fmt.Errorf("%w: mistral request failed: %v", generation.ErrProvider, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: mistral returned no choices", generation.ErrProvider)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "content_filter" {
		return "", fmt.Errorf("%w: mistral finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}

	content := strings.TrimSpace(choice.Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: mistral returned empty content", generation.ErrProvider)
	}

	g.logger.InfoContext(ctx, "chat completion succeeded",
		"model", g.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return content, nil
}
