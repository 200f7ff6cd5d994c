package flow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/prompt"
)

// ImageFlow generates a single marketing image.
type ImageFlow struct {
	provider generation.ImageProvider
	logger   *slog.Logger
}

// NewImageFlow creates an ImageFlow backed by provider.
func NewImageFlow(provider generation.ImageProvider, logger *slog.Logger) *ImageFlow {
	return &ImageFlow{
		provider: provider,
		logger:   logger.With(slog.String("component", "image_flow")),
	}
}

// Generate builds the image prompt segments, calls the provider once and
// returns the image as a data URI.
func (f *ImageFlow) Generate(ctx context.Context, req generation.Request) (*generation.ImageResult, error) {
	segments, err := prompt.BuildImage(req)
	if err != nil {
		return nil, err
	}

	media, err := generateMedia(ctx, f.provider, segments, optionsFor(req))
	if err != nil {
		return nil, err
	}

	f.logger.DebugContext(ctx, "image generated",
		"model", f.provider.Model(),
		"refine", req.BaseImage != "")

	return &generation.ImageResult{ImageURL: media.DataURI()}, nil
}

func optionsFor(req generation.Request) generation.ImageOptions {
	return generation.ImageOptions{AspectRatio: prompt.AspectRatio(req.ImageType)}
}

// generateMedia calls provider and rejects empty media.
func generateMedia(
	ctx context.Context,
	provider generation.ImageProvider,
	segments []generation.Segment,
	opts generation.ImageOptions,
) (*generation.Media, error) {
	media, err := provider.GenerateImage(ctx, segments, opts)
	if err != nil {
		return nil, err
	}
	if media == nil || len(media.Data) == 0 {
		return nil, fmt.Errorf("%w: %s returned no media", generation.ErrProvider, provider.Model())
	}
	return media, nil
}
