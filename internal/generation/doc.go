// Package generation defines the ports and value types shared by the
// marketing content pipeline: the request record a user submits, the text and
// image outputs returned to the UI, the provider interfaces that external
// LLM/image services are adapted to, and the error taxonomy every layer wraps.
//
// Provider adapters (Mistral, Gemini, Imagen) live under internal/platform and
// implement TextProvider or ImageProvider. Flows in internal/flow combine these
// ports with the prompt builders, and the action layer turns the errors defined
// here into user-facing messages.
package generation
