package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/generation"
	"google.golang.org/genai"
)

// safetySettings blocks only high-probability harm in the two categories
// marketing imagery is most likely to trip.
var safetySettings = []*genai.SafetySetting{
	{
		Category:  genai.HarmCategoryDangerousContent,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
	{
		Category:  genai.HarmCategoryHateSpeech,
		Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
	},
}

// ImageGenerator implements generation.ImageProvider with a Gemini
// multimodal model that can answer with inline image data.
type ImageGenerator struct {
	models modelsAPI
	model  string
	logger *slog.Logger
}

var _ generation.ImageProvider = (*ImageGenerator)(nil)

// NewImageGenerator creates an ImageGenerator for the given model.
func NewImageGenerator(models modelsAPI, model string, logger *slog.Logger) (*ImageGenerator, error) {
	if err := validateAdapter(models, model, logger); err != nil {
		return nil, err
	}
	return &ImageGenerator{
		models: models,
		model:  model,
		logger: logger.With(slog.String("component", "gemini_image_generator")),
	}, nil
}

// Model returns the configured model name.
func (g *ImageGenerator) Model() string {
	return g.model
}

// GenerateImage sends the segments as a single user turn and returns the
// first inline image in the response.
func (g *ImageGenerator) GenerateImage(
	ctx context.Context,
	segments []generation.Segment,
	_ generation.ImageOptions,
) (*generation.Media, error) {
	content, err := toContent(segments)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		SafetySettings:     safetySettings,
	}

	g.logger.DebugContext(ctx, "sending image generation request",
		"model", g.model,
		"segment_count", len(segments))

	resp, err := g.models.GenerateContent(ctx, g.model, []*genai.Content{content}, cfg)
	if err != nil {
		g.logger.ErrorContext(ctx, "gemini request failed", "error", err)
		return nil, fmt.Errorf("%w: gemini request failed: %v", generation.ErrProvider, err)
	}

	media, err := extractMedia(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "gemini returned no usable image", "error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "image generated",
		"model", g.model,
		"mime_type", media.MIMEType,
		"bytes", len(media.Data))

	return media, nil
}

// toContent converts ordered prompt segments into one user content.
func toContent(segments []generation.Segment) (*genai.Content, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no prompt segments", generation.ErrInvalidRequest)
	}

	parts := make([]*genai.Part, 0, len(segments))
	for _, s := range segments {
		switch s.Kind {
		case generation.SegmentText:
			parts = append(parts, &genai.Part{Text: s.Text})
		case generation.SegmentImage:
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{MIMEType: s.MIMEType, Data: s.Data},
			})
		default:
			return nil, fmt.Errorf("%w: unknown segment kind %q", generation.ErrInvalidRequest, s.Kind)
		}
	}

	return &genai.Content{Role: "user", Parts: parts}, nil
}

// extractMedia returns the first inline image of the first candidate.
func extractMedia(resp *genai.GenerateContentResponse) (*generation.Media, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates in response", generation.ErrProvider)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", generation.ErrProvider)
	}

	for _, part := range candidate.Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return &generation.Media{
			MIMEType: part.InlineData.MIMEType,
			Data:     part.InlineData.Data,
		}, nil
	}

	return nil, fmt.Errorf("%w: response contained no image", generation.ErrProvider)
}

func validateAdapter(models modelsAPI, model string, logger *slog.Logger) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if models == nil {
		return fmt.Errorf("%w: models client cannot be nil", generation.ErrInvalidConfig)
	}
	if model == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}
