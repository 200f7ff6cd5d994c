package generation_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(generation.ErrContentBlocked, generation.ErrProvider))
	assert.True(t, errors.Is(generation.ErrEmptyTopic, generation.ErrInvalidRequest))
	assert.True(t, errors.Is(generation.ErrInvalidBaseImage, generation.ErrInvalidRequest))
	assert.False(t, errors.Is(generation.ErrSchemaValidation, generation.ErrProvider))
	assert.False(t, errors.Is(generation.ErrConfiguration, generation.ErrProvider))
}

func TestDataURIRoundTrip(t *testing.T) {
	t.Parallel()

	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	uri := generation.EncodeDataURI("image/png", payload)
	assert.Equal(t, "data:image/png;base64,iVBORwAB", uri)

	mimeType, data, err := generation.ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, payload, data)
}

func TestParseDataURIRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
	}{
		{name: "plain url", uri: "https://example.com/image.png"},
		{name: "missing comma", uri: "data:image/png;base64"},
		{name: "not base64", uri: "data:image/png,rawbytes"},
		{name: "missing mime", uri: "data:;base64,AAAA"},
		{name: "bad payload", uri: "data:image/png;base64,***"},
		{name: "empty payload", uri: "data:image/png;base64,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := generation.ParseDataURI(tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidBaseImage)
		})
	}
}

func TestNormalizeHashtags(t *testing.T) {
	t.Parallel()

	got := generation.NormalizeHashtags([]string{"#marketing", "  ##cafe ", "#", "", "verano"})
	assert.Equal(t, []string{"marketing", "cafe", "verano"}, got)

	for _, tag := range got {
		assert.NotEqual(t, '#', rune(tag[0]))
	}
}

func TestShareText(t *testing.T) {
	t.Parallel()

	text := generation.ShareText(generation.PostContent{
		MainText: "Nuevo café de temporada",
		Hashtags: []string{"cafe", "otoño"},
	})
	assert.Equal(t, "Nuevo café de temporada\n\n#cafe #otoño", text)

	assert.Equal(t, "Solo texto", generation.ShareText(generation.PostContent{MainText: "Solo texto"}))
}

func TestDualImageResultURLs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, generation.DualImageResult{ImageURL: "a", SecondaryImageURL: "b"}.URLs())
	assert.Equal(t, []string{"a"}, generation.DualImageResult{ImageURL: "a"}.URLs())
}

func TestFileExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jpg", generation.FileExtension("image/jpeg"))
	assert.Equal(t, "png", generation.FileExtension("image/png"))
	assert.Equal(t, "png", generation.FileExtension("application/octet-stream"))
}
