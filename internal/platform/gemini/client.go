package gemini

import (
	"context"
	"fmt"

	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/generation"
	"google.golang.org/genai"
)

// modelsAPI is the subset of genai.Models the adapters use.
type modelsAPI interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
	GenerateImages(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateImagesConfig,
	) (*genai.GenerateImagesResponse, error)
}

// NewModels creates a genai client for the Gemini API backend and returns its
// models service, shared by ImageGenerator and ImagenGenerator.
func NewModels(ctx context.Context, cfg config.LLMConfig) (*genai.Models, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return client.Models, nil
}
