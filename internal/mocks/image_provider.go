package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/social-spark/internal/generation"
)

// MockImageProvider implements generation.ImageProvider for testing
type MockImageProvider struct {
	// GenerateImageFn allows test cases to mock the GenerateImage behavior
	GenerateImageFn func(
		ctx context.Context,
		segments []generation.Segment,
		opts generation.ImageOptions,
	) (*generation.Media, error)

	// Default response values
	Media     *generation.Media
	Err       error
	ModelName string

	// Call tracking for verification
	GenerateImageCalls struct {
		mu sync.Mutex

		Count    int
		Segments [][]generation.Segment
		Options  []generation.ImageOptions
	}
}

var _ generation.ImageProvider = (*MockImageProvider)(nil)

// GenerateImage implements the generation.ImageProvider interface
func (m *MockImageProvider) GenerateImage(
	ctx context.Context,
	segments []generation.Segment,
	opts generation.ImageOptions,
) (*generation.Media, error) {
	m.GenerateImageCalls.mu.Lock()
	m.GenerateImageCalls.Count++
	m.GenerateImageCalls.Segments = append(m.GenerateImageCalls.Segments, segments)
	m.GenerateImageCalls.Options = append(m.GenerateImageCalls.Options, opts)
	m.GenerateImageCalls.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, segments, opts)
	}
	return m.Media, m.Err
}

// Model implements the generation.ImageProvider interface
func (m *MockImageProvider) Model() string {
	if m.ModelName == "" {
		return "mock-image-model"
	}
	return m.ModelName
}

// CallCount returns the number of GenerateImage calls so far.
func (m *MockImageProvider) CallCount() int {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	return m.GenerateImageCalls.Count
}

// LastSegments returns the segments of the most recent call, or nil.
func (m *MockImageProvider) LastSegments() []generation.Segment {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	if len(m.GenerateImageCalls.Segments) == 0 {
		return nil
	}
	return m.GenerateImageCalls.Segments[len(m.GenerateImageCalls.Segments)-1]
}

// NewMockImageProviderWithImage creates a MockImageProvider returning a PNG with data.
func NewMockImageProviderWithImage(data []byte) *MockImageProvider {
	return &MockImageProvider{Media: &generation.Media{MIMEType: "image/png", Data: data}}
}

// NewMockImageProviderWithError creates a MockImageProvider that returns err.
func NewMockImageProviderWithError(err error) *MockImageProvider {
	return &MockImageProvider{Err: err}
}
