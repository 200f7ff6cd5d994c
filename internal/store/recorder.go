package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-spark/internal/events"
)

// Recorder writes generation events to a GenerationLogStore.
type Recorder struct {
	store  GenerationLogStore
	logger *slog.Logger
}

var _ events.EventHandler = (*Recorder)(nil)

// NewRecorder creates a Recorder. It panics if store is nil.
func NewRecorder(store GenerationLogStore, logger *slog.Logger) *Recorder {
	if store == nil {
		panic("generation log store cannot be nil")
	}
	return &Recorder{
		store:  store,
		logger: logger.With(slog.String("component", "generation_log_recorder")),
	}
}

// HandleEvent implements events.EventHandler.
func (r *Recorder) HandleEvent(ctx context.Context, event *events.GenerationEvent) error {
	entry := NewGenerationLogFromEvent(event)
	if err := r.store.Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record generation %s: %w", event.ID, err)
	}
	r.logger.DebugContext(ctx, "generation recorded",
		"id", entry.ID,
		"kind", entry.Kind,
		"status", entry.Status)
	return nil
}
