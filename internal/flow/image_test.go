package flow_test

import (
	"context"
	"testing"

	"github.com/phrazzld/social-spark/internal/flow"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFlow_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns data uri", func(t *testing.T) {
		t.Parallel()
		provider := mocks.NewMockImageProviderWithImage([]byte{0x89, 'P', 'N', 'G'})
		req := generation.Request{Topic: "eco bottles", ImageType: "Instagram Story (1080x1920px)"}

		got, err := flow.NewImageFlow(provider, testLogger()).Generate(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,iVBORw==", got.ImageURL)
		require.Equal(t, 1, provider.CallCount())
		assert.Equal(t, "9:16", provider.GenerateImageCalls.Options[0].AspectRatio)
	})

	t.Run("refine sends base image first", func(t *testing.T) {
		t.Parallel()
		provider := mocks.NewMockImageProviderWithImage([]byte{1})
		req := generation.Request{Topic: "warmer light", BaseImage: "data:image/jpeg;base64,AQID"}

		_, err := flow.NewImageFlow(provider, testLogger()).Generate(context.Background(), req)

		require.NoError(t, err)
		segments := provider.LastSegments()
		require.Len(t, segments, 2)
		assert.Equal(t, generation.SegmentImage, segments[0].Kind)
		assert.Equal(t, []byte{1, 2, 3}, segments[0].Data)
	})

	t.Run("empty media is a provider error", func(t *testing.T) {
		t.Parallel()
		provider := &mocks.MockImageProvider{Media: &generation.Media{MIMEType: "image/png"}}

		got, err := flow.NewImageFlow(provider, testLogger()).Generate(context.Background(), generation.Request{Topic: "x"})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, generation.ErrProvider)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		t.Parallel()
		provider := mocks.NewMockImageProviderWithError(generation.ErrContentBlocked)

		_, err := flow.NewImageFlow(provider, testLogger()).Generate(context.Background(), generation.Request{Topic: "x"})

		assert.ErrorIs(t, err, generation.ErrContentBlocked)
		assert.Equal(t, 1, provider.CallCount())
	})

	t.Run("invalid base image skips provider", func(t *testing.T) {
		t.Parallel()
		provider := mocks.NewMockImageProviderWithImage([]byte{1})
		req := generation.Request{Topic: "x", BaseImage: "https://example.com/a.png"}

		_, err := flow.NewImageFlow(provider, testLogger()).Generate(context.Background(), req)

		assert.ErrorIs(t, err, generation.ErrInvalidBaseImage)
		assert.Zero(t, provider.CallCount())
	})
}
