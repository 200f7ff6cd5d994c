package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which server action produced an event.
type Kind string

const (
	KindText      Kind = "text"
	KindImage     Kind = "image"
	KindDualImage Kind = "dual_image"
)

// Status is the outcome of a generation attempt.
type Status string

const (
	StatusSuccess Status = "success"
	// StatusPartial is only used by dual image generation when one provider failed.
	StatusPartial Status = "partial"
	StatusFailure Status = "failure"
)

// GenerationEvent describes one completed generation attempt.
type GenerationEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Kind     Kind   `json:"kind"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Status   Status `json:"status"`

	// ErrorMessage is the redacted, user-facing error; empty on success
	ErrorMessage string `json:"error_message,omitempty"`

	Duration time.Duration `json:"duration"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewGenerationEvent creates a GenerationEvent for an attempt that took duration.
func NewGenerationEvent(kind Kind, provider, model string, status Status, duration time.Duration) *GenerationEvent {
	return &GenerationEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Provider:  provider,
		Model:     model,
		Status:    status,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}
}

// WithError sets the error message and returns the event.
func (e *GenerationEvent) WithError(msg string) *GenerationEvent {
	e.ErrorMessage = msg
	return e
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *GenerationEvent) error
}

// HandlerFunc adapts an ordinary function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *GenerationEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *GenerationEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *GenerationEvent) error
}
