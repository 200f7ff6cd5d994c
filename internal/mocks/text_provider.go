package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/social-spark/internal/generation"
)

// MockTextProvider implements generation.TextProvider for testing
type MockTextProvider struct {
	// GenerateJSONFn allows test cases to mock the GenerateJSON behavior
	GenerateJSONFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Response  string
	Err       error
	ModelName string

	// Call tracking for verification
	GenerateJSONCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateJSON was called
		Count int

		// Prompts contains all prompts passed to GenerateJSON calls
		Prompts []string
	}
}

var _ generation.TextProvider = (*MockTextProvider)(nil)

// GenerateJSON implements the generation.TextProvider interface
func (m *MockTextProvider) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m.GenerateJSONCalls.mu.Lock()
	m.GenerateJSONCalls.Count++
	m.GenerateJSONCalls.Prompts = append(m.GenerateJSONCalls.Prompts, prompt)
	m.GenerateJSONCalls.mu.Unlock()

	if m.GenerateJSONFn != nil {
		return m.GenerateJSONFn(ctx, prompt)
	}
	return m.Response, m.Err
}

// Model implements the generation.TextProvider interface
func (m *MockTextProvider) Model() string {
	if m.ModelName == "" {
		return "mock-text-model"
	}
	return m.ModelName
}

// CallCount returns the number of GenerateJSON calls so far.
func (m *MockTextProvider) CallCount() int {
	m.GenerateJSONCalls.mu.Lock()
	defer m.GenerateJSONCalls.mu.Unlock()
	return m.GenerateJSONCalls.Count
}

// NewMockTextProviderWithResponse creates a MockTextProvider that returns raw JSON.
func NewMockTextProviderWithResponse(raw string) *MockTextProvider {
	return &MockTextProvider{Response: raw}
}

// NewMockTextProviderWithError creates a MockTextProvider that returns err.
func NewMockTextProviderWithError(err error) *MockTextProvider {
	return &MockTextProvider{Err: err}
}
