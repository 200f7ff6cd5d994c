package store_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/social-spark/internal/events"
	"github.com/phrazzld/social-spark/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(status string) *store.GenerationLog {
	return &store.GenerationLog{
		ID:         uuid.New(),
		Kind:       "image",
		Provider:   "gemini",
		Model:      "gemini-2.0-flash-exp",
		Status:     status,
		DurationMS: 1200,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestGenerationLogValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, newEntry("success").Validate())

	tests := []struct {
		name   string
		mutate func(*store.GenerationLog)
	}{
		{name: "nil id", mutate: func(l *store.GenerationLog) { l.ID = uuid.Nil }},
		{name: "unknown kind", mutate: func(l *store.GenerationLog) { l.Kind = "video" }},
		{name: "unknown status", mutate: func(l *store.GenerationLog) { l.Status = "pending" }},
		{name: "missing provider", mutate: func(l *store.GenerationLog) { l.Provider = "" }},
		{name: "negative duration", mutate: func(l *store.GenerationLog) { l.DurationMS = -1 }},
		{name: "zero time", mutate: func(l *store.GenerationLog) { l.CreatedAt = time.Time{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := newEntry("success")
			tc.mutate(entry)
			assert.ErrorIs(t, entry.Validate(), store.ErrInvalidEntity)
		})
	}
}

func TestNewGenerationLogFromEvent(t *testing.T) {
	t.Parallel()

	event := events.NewGenerationEvent(events.KindDualImage, "gemini+imagen", "a,b", events.StatusPartial,
		2500*time.Millisecond).WithError("imagen: unavailable")

	entry := store.NewGenerationLogFromEvent(event)

	assert.Equal(t, event.ID, entry.ID)
	assert.Equal(t, "dual_image", entry.Kind)
	assert.Equal(t, "partial", entry.Status)
	assert.Equal(t, int64(2500), entry.DurationMS)
	assert.Equal(t, "imagen: unavailable", entry.ErrorMessage)
	assert.NoError(t, entry.Validate())
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, store.DefaultListLimit, store.ClampLimit(0))
	assert.Equal(t, store.DefaultListLimit, store.ClampLimit(-3))
	assert.Equal(t, 7, store.ClampLimit(7))
	assert.Equal(t, store.MaxListLimit, store.ClampLimit(store.MaxListLimit+1))
}

func TestMemoryGenerationLogStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryGenerationLogStore(10)
		first, second, third := newEntry("success"), newEntry("failure"), newEntry("partial")
		for _, e := range []*store.GenerationLog{first, second, third} {
			require.NoError(t, s.Record(ctx, e))
		}

		got, err := s.ListRecent(ctx, 2)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, third.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})

	t.Run("evicts oldest past capacity", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryGenerationLogStore(2)
		first := newEntry("success")
		require.NoError(t, s.Record(ctx, first))
		require.NoError(t, s.Record(ctx, newEntry("success")))
		require.NoError(t, s.Record(ctx, newEntry("success")))

		got, err := s.ListRecent(ctx, 10)

		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, e := range got {
			assert.NotEqual(t, first.ID, e.ID)
		}
		// The evicted ID can be recorded again.
		assert.NoError(t, s.Record(ctx, first))
	})

	t.Run("rejects duplicates and invalid entries", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryGenerationLogStore(0)
		entry := newEntry("success")
		require.NoError(t, s.Record(ctx, entry))

		err := s.Record(ctx, entry)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		var storeErr *store.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "record", storeErr.Operation)

		assert.ErrorIs(t, s.Record(ctx, newEntry("bogus")), store.ErrInvalidEntity)
	})

	t.Run("returns copies", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryGenerationLogStore(5)
		entry := newEntry("success")
		require.NoError(t, s.Record(ctx, entry))
		entry.Model = "changed"

		got, err := s.ListRecent(ctx, 1)
		require.NoError(t, err)
		got[0].Provider = "changed"

		again, err := s.ListRecent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash-exp", again[0].Model)
		assert.Equal(t, "gemini", again[0].Provider)
	})

	t.Run("concurrent records", func(t *testing.T) {
		t.Parallel()
		s := store.NewMemoryGenerationLogStore(100)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.Record(ctx, newEntry("success")))
			}()
		}
		wg.Wait()

		got, err := s.ListRecent(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, got, 50)
	})
}

type failingStore struct{ err error }

func (f failingStore) Record(ctx context.Context, entry *store.GenerationLog) error { return f.err }

func (f failingStore) ListRecent(ctx context.Context, limit int) ([]*store.GenerationLog, error) {
	return nil, f.err
}

func TestRecorder(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("records events", func(t *testing.T) {
		s := store.NewMemoryGenerationLogStore(10)
		rec := store.NewRecorder(s, logger)
		event := events.NewGenerationEvent(events.KindText, "mistral", "mistral-large-latest", events.StatusSuccess, time.Second)

		require.NoError(t, rec.HandleEvent(context.Background(), event))

		got, err := s.ListRecent(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, event.ID, got[0].ID)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		rec := store.NewRecorder(failingStore{err: fmt.Errorf("%w: disk full", store.ErrInvalidEntity)}, logger)
		event := events.NewGenerationEvent(events.KindText, "mistral", "m", events.StatusSuccess, 0)

		err := rec.HandleEvent(context.Background(), event)

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), event.ID.String())
	})

	t.Run("nil store panics", func(t *testing.T) {
		assert.Panics(t, func() { store.NewRecorder(nil, logger) })
	})
}
