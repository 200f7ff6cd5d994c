package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationEvent(t *testing.T) {
	event := NewGenerationEvent(KindImage, "gemini", "gemini-2.0-flash-exp", StatusSuccess, 1500*time.Millisecond)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, KindImage, event.Kind)
	assert.Equal(t, "gemini", event.Provider)
	assert.Equal(t, "gemini-2.0-flash-exp", event.Model)
	assert.Equal(t, StatusSuccess, event.Status)
	assert.Equal(t, 1500*time.Millisecond, event.Duration)
	assert.Empty(t, event.ErrorMessage)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	failed := NewGenerationEvent(KindText, "mistral", "mistral-large-latest", StatusFailure, 0).
		WithError("quota exceeded")
	assert.Equal(t, "quota exceeded", failed.ErrorMessage)

	raw, err := json.Marshal(failed)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kind":"text"`)
	assert.Contains(t, string(raw), `"error_message":"quota exceeded"`)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *GenerationEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *GenerationEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var got *GenerationEvent
	handler := HandlerFunc(func(ctx context.Context, event *GenerationEvent) error {
		got = event
		return errors.New("handler error")
	})

	event := NewGenerationEvent(KindText, "mistral", "m", StatusSuccess, time.Second)
	err := handler.HandleEvent(context.Background(), event)

	assert.EqualError(t, err, "handler error")
	assert.Same(t, event, got)
}
