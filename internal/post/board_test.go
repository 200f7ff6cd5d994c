package post

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newPost() *Post {
	return &Post{ID: uuid.New(), ImageState: ImageIdle, TextState: TextReady}
}

func TestBoardsEviction(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	boards := NewBoards(30*time.Minute, 10, testLogger())
	boards.now = clock.now

	boards.add("a", newPost())
	boards.add("b", newPost())
	assert.Equal(t, 2, boards.Sessions())

	clock.t = clock.t.Add(20 * time.Minute)
	assert.Len(t, boards.list("a"), 1, "access refreshes the session")

	clock.t = clock.t.Add(20 * time.Minute)
	assert.Equal(t, 1, boards.Sweep(), "only b has been idle past the ttl")
	assert.Equal(t, 1, boards.Sessions())

	clock.t = clock.t.Add(31 * time.Minute)
	assert.Empty(t, boards.list("a"), "expired on access")
}

func TestBoardsCapacity(t *testing.T) {
	t.Parallel()

	boards := NewBoards(time.Hour, 2, testLogger())
	oldest, middle, newest := newPost(), newPost(), newPost()
	boards.add("a", oldest)
	boards.add("a", middle)
	boards.add("a", newest)

	posts := boards.list("a")
	require.Len(t, posts, 2)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, middle.ID, posts[1].ID)

	_, err := boards.get("a", oldest.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardsReturnCopies(t *testing.T) {
	t.Parallel()

	boards := NewBoards(time.Hour, 5, testLogger())
	p := newPost()
	p.Images = []string{firstImage}
	boards.add("a", p)

	got, err := boards.get("a", p.ID)
	require.NoError(t, err)
	got.Images[0] = "mutated"

	again, err := boards.get("a", p.ID)
	require.NoError(t, err)
	assert.Equal(t, firstImage, again.Images[0])
}

func TestRunJanitor(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Now()}
	boards := NewBoards(time.Minute, 5, testLogger())
	boards.now = clock.now
	boards.add("a", newPost())
	clock.t = clock.t.Add(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		boards.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return boards.Sessions() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
