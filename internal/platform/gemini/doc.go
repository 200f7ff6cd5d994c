// Package gemini provides implementations of the generation.ImageProvider
// port backed by Google's generative AI API.
//
// This package is an infrastructure adapter, connecting the image flows to
// Google's external services without exposing SDK types to the rest of the
// application.
//
// Key components:
//
// 1. ImageGenerator:
//   - Calls a Gemini multimodal model with TEXT and IMAGE response modalities
//   - Sends prompt segments in order, so a reference image precedes its instruction
//   - Applies BLOCK_ONLY_HIGH safety thresholds for dangerous content and hate speech
//
// 2. ImagenGenerator:
//   - Calls an Imagen model through the GenerateImages endpoint
//   - Serves as the independent secondary provider in dual-image mode
//   - Honors the aspect ratio derived from the requested image format
//
// Both adapters share one genai.Client and translate SDK failures, safety
// blocks and empty responses into the generation error taxonomy.
package gemini
