package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/social-spark/internal/events"
)

const (
	// DefaultListLimit is used when ListRecent is called with a non-positive limit.
	DefaultListLimit = 50
	// MaxListLimit caps a single ListRecent call.
	MaxListLimit = 500
)

// GenerationLog is one recorded generation attempt.
type GenerationLog struct {
	ID           uuid.UUID `json:"id" validate:"required"`
	Kind         string    `json:"kind" validate:"required,oneof=text image dual_image"`
	Provider     string    `json:"provider" validate:"required"`
	Model        string    `json:"model"`
	Status       string    `json:"status" validate:"required,oneof=success partial failure"`
	ErrorMessage string    `json:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at" validate:"required"`
}

var logValidator = validator.New()

// Validate checks that the entry can be stored.
func (l *GenerationLog) Validate() error {
	if l.ID == uuid.Nil {
		return fmt.Errorf("%w: id cannot be nil", ErrInvalidEntity)
	}
	if l.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at cannot be zero", ErrInvalidEntity)
	}
	if err := logValidator.Struct(l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	return nil
}

// NewGenerationLogFromEvent converts a generation event into a log entry.
func NewGenerationLogFromEvent(e *events.GenerationEvent) *GenerationLog {
	return &GenerationLog{
		ID:           e.ID,
		Kind:         string(e.Kind),
		Provider:     e.Provider,
		Model:        e.Model,
		Status:       string(e.Status),
		ErrorMessage: e.ErrorMessage,
		DurationMS:   e.Duration.Milliseconds(),
		CreatedAt:    e.CreatedAt.UTC(),
	}
}

// GenerationLogStore persists generation log entries.
type GenerationLogStore interface {
	// Record saves a new entry.
	// Returns ErrInvalidEntity if the entry fails validation and
	// ErrDuplicate if an entry with the same ID exists.
	Record(ctx context.Context, entry *GenerationLog) error

	// ListRecent returns up to limit entries, newest first.
	// A non-positive limit means DefaultListLimit; limits above MaxListLimit are capped.
	ListRecent(ctx context.Context, limit int) ([]*GenerationLog, error)
}

// ClampLimit normalizes a ListRecent limit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
