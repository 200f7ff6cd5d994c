// Package mistral adapts Mistral's chat completion API to the
// generation.TextProvider port.
//
// Mistral exposes an OpenAI-compatible endpoint, so the adapter drives it with
// the openai-go SDK pointed at the Mistral base URL. Requests ask for a JSON
// object response; parsing and schema validation happen in the text flow.
package mistral
