package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/prompt"
	"github.com/phrazzld/social-spark/internal/redact"
	"golang.org/x/sync/errgroup"
)

// DualImageFlow generates one image from each of two independent providers
// with the same prompt.
//
// The flow succeeds when at least one provider returns an image. A single
// failure is reported, redacted, in DualImageResult.PartialError; only a
// double failure is an error.
type DualImageFlow struct {
	primary   generation.ImageProvider
	secondary generation.ImageProvider
	logger    *slog.Logger
}

// NewDualImageFlow creates a DualImageFlow.
func NewDualImageFlow(primary, secondary generation.ImageProvider, logger *slog.Logger) *DualImageFlow {
	return &DualImageFlow{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With(slog.String("component", "dual_image_flow")),
	}
}

// Generate runs both providers concurrently and merges their results.
func (f *DualImageFlow) Generate(ctx context.Context, req generation.Request) (*generation.DualImageResult, error) {
	segments, err := prompt.BuildImage(req)
	if err != nil {
		return nil, err
	}
	opts := optionsFor(req)

	var (
		g                        errgroup.Group
		primary, secondary       *generation.Media
		primaryErr, secondaryErr error
	)
	// Errors are kept per provider so one failure never cancels the other;
	// the group itself always succeeds.
	g.Go(func() error {
		primary, primaryErr = generateMedia(ctx, f.primary, segments, opts)
		return nil
	})
	g.Go(func() error {
		secondary, secondaryErr = generateMedia(ctx, f.secondary, segments, opts)
		return nil
	})
	g.Wait()

	switch {
	case primaryErr == nil && secondaryErr == nil:
		return &generation.DualImageResult{
			ImageURL:          primary.DataURI(),
			SecondaryImageURL: secondary.DataURI(),
		}, nil

	case primaryErr == nil:
		f.logger.WarnContext(ctx, "secondary image provider failed",
			"model", f.secondary.Model(),
			"error", redact.Error(secondaryErr))
		return &generation.DualImageResult{
			ImageURL:     primary.DataURI(),
			PartialError: partialError(f.secondary.Model(), secondaryErr),
		}, nil

	case secondaryErr == nil:
		f.logger.WarnContext(ctx, "primary image provider failed",
			"model", f.primary.Model(),
			"error", redact.Error(primaryErr))
		return &generation.DualImageResult{
			ImageURL:     secondary.DataURI(),
			PartialError: partialError(f.primary.Model(), primaryErr),
		}, nil

	default:
		return nil, errors.Join(
			fmt.Errorf("%s: %w", f.primary.Model(), primaryErr),
			fmt.Errorf("%s: %w", f.secondary.Model(), secondaryErr),
		)
	}
}

func partialError(model string, err error) string {
	return model + ": " + redact.Error(err)
}
