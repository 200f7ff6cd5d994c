package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/social-spark/internal/generation"
	"google.golang.org/genai"
)

// ImagenGenerator implements generation.ImageProvider with an Imagen model.
// Imagen takes a text prompt only; prompts carrying a reference image are
// rejected with generation.ErrReferenceImageUnsupported.
type ImagenGenerator struct {
	models modelsAPI
	model  string
	logger *slog.Logger
}

var _ generation.ImageProvider = (*ImagenGenerator)(nil)

// NewImagenGenerator creates an ImagenGenerator for the given model.
func NewImagenGenerator(models modelsAPI, model string, logger *slog.Logger) (*ImagenGenerator, error) {
	if err := validateAdapter(models, model, logger); err != nil {
		return nil, err
	}
	return &ImagenGenerator{
		models: models,
		model:  model,
		logger: logger.With(slog.String("component", "imagen_generator")),
	}, nil
}

// Model returns the configured model name.
func (g *ImagenGenerator) Model() string {
	return g.model
}

// GenerateImage requests a single image for a text-only prompt.
func (g *ImagenGenerator) GenerateImage(
	ctx context.Context,
	segments []generation.Segment,
	opts generation.ImageOptions,
) (*generation.Media, error) {
	for _, s := range segments {
		if s.Kind == generation.SegmentImage {
			return nil, generation.ErrReferenceImageUnsupported
		}
	}
	prompt := textOf(segments)
	if prompt == "" {
		return nil, fmt.Errorf("%w: no text segment in prompt", generation.ErrInvalidRequest)
	}

	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    opts.AspectRatio,
	}

	resp, err := g.models.GenerateImages(ctx, g.model, prompt, cfg)
	if err != nil {
		g.logger.ErrorContext(ctx, "imagen request failed", "error", err)
		return nil, fmt.Errorf("%w: imagen request failed: %v", generation.ErrProvider, err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("%w: imagen returned no images", generation.ErrProvider)
	}

	img := resp.GeneratedImages[0]
	if img.RAIFilteredReason != "" {
		return nil, fmt.Errorf("%w: %s", generation.ErrContentBlocked, img.RAIFilteredReason)
	}
	if img.Image == nil || len(img.Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("%w: imagen returned an empty image", generation.ErrProvider)
	}

	mimeType := img.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	g.logger.InfoContext(ctx, "image generated",
		"model", g.model,
		"aspect_ratio", opts.AspectRatio,
		"bytes", len(img.Image.ImageBytes))

	return &generation.Media{MIMEType: mimeType, Data: img.Image.ImageBytes}, nil
}

func textOf(segments []generation.Segment) string {
	var texts []string
	for _, s := range segments {
		if s.Kind == generation.SegmentText && strings.TrimSpace(s.Text) != "" {
			texts = append(texts, s.Text)
		}
	}
	return strings.Join(texts, "\n")
}
