package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/prompt"
)

// postSchema is the JSON object the text model must return. Pointer fields
// distinguish a missing key from an empty value.
type postSchema struct {
	MainText *string   `json:"main_text" validate:"required"`
	Hashtags *[]string `json:"hashtags" validate:"required"`
}

// TextFlow generates marketing post text and hashtags.
type TextFlow struct {
	provider generation.TextProvider
	validate *validator.Validate
	logger   *slog.Logger
}

// NewTextFlow creates a TextFlow backed by provider.
func NewTextFlow(provider generation.TextProvider, logger *slog.Logger) *TextFlow {
	return &TextFlow{
		provider: provider,
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "text_flow")),
	}
}

// Generate builds the text prompt, calls the provider once and validates the
// response against the post schema.
func (f *TextFlow) Generate(ctx context.Context, req generation.Request) (*generation.PostContent, error) {
	p, err := prompt.BuildText(req)
	if err != nil {
		return nil, err
	}

	raw, err := f.provider.GenerateJSON(ctx, p)
	if err != nil {
		return nil, err
	}

	content, err := f.parse(raw)
	if err != nil {
		f.logger.WarnContext(ctx, "text response failed schema validation",
			"error", err,
			"response_length", len(raw))
		return nil, err
	}

	f.logger.DebugContext(ctx, "text generated",
		"main_text_length", len(content.MainText),
		"hashtag_count", len(content.Hashtags))

	return content, nil
}

func (f *TextFlow) parse(raw string) (*generation.PostContent, error) {
	var out postSchema
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has the wrong type", generation.ErrSchemaValidation, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", generation.ErrSchemaValidation, err)
	}

	if err := f.validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrSchemaValidation, err)
	}

	mainText := strings.TrimSpace(*out.MainText)
	if mainText == "" {
		return nil, fmt.Errorf("%w: main_text is empty", generation.ErrSchemaValidation)
	}

	return &generation.PostContent{
		MainText: mainText,
		Hashtags: generation.NormalizeHashtags(*out.Hashtags),
	}, nil
}

// stripCodeFence removes a surrounding ```json fence some models add even in
// JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
