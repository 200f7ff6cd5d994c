package post

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// board is one session's posts, newest first.
type board struct {
	posts    []*Post
	lastSeen time.Time
}

func (b *board) index(id uuid.UUID) int {
	for i, p := range b.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Boards stores the posts of every session in memory.
type Boards struct {
	mu       sync.Mutex
	sessions map[string]*board
	ttl      time.Duration
	maxPosts int
	now      func() time.Time
	logger   *slog.Logger
}

// NewBoards creates a Boards store. Sessions idle for longer than ttl are
// evicted; each board keeps at most maxPosts posts, dropping the oldest.
func NewBoards(ttl time.Duration, maxPosts int, logger *slog.Logger) *Boards {
	if logger == nil {
		logger = slog.Default()
	}
	return &Boards{
		sessions: make(map[string]*board),
		ttl:      ttl,
		maxPosts: maxPosts,
		now:      time.Now,
		logger:   logger.With(slog.String("component", "post_boards")),
	}
}

// session returns the live board for id, creating it when create is set.
// Callers must hold b.mu.
func (b *Boards) session(id string, create bool) *board {
	now := b.now()
	s, ok := b.sessions[id]
	if ok && b.ttl > 0 && now.Sub(s.lastSeen) > b.ttl {
		delete(b.sessions, id)
		s, ok = nil, false
	}
	if !ok {
		if !create {
			return nil
		}
		s = &board{}
		b.sessions[id] = s
	}
	s.lastSeen = now
	return s
}

// add prepends p to the session's board.
func (b *Boards) add(sessionID string, p *Post) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.session(sessionID, true)
	s.posts = append([]*Post{p}, s.posts...)
	if b.maxPosts > 0 && len(s.posts) > b.maxPosts {
		s.posts = s.posts[:b.maxPosts]
	}
}

// list returns copies of the session's posts, newest first.
func (b *Boards) list(sessionID string) []*Post {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Post, 0)
	s := b.session(sessionID, false)
	if s == nil {
		return out
	}
	for _, p := range s.posts {
		out = append(out, p.clone())
	}
	return out
}

// get returns a copy of one post.
func (b *Boards) get(sessionID string, id uuid.UUID) (*Post, error) {
	var out *Post
	err := b.update(sessionID, id, func(p *Post) error {
		out = p.clone()
		return nil
	})
	return out, err
}

// update runs fn on the stored post under the lock and returns fn's error.
func (b *Boards) update(sessionID string, id uuid.UUID, fn func(*Post) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.session(sessionID, false)
	if s == nil {
		return ErrNotFound
	}
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	return fn(s.posts[i])
}

// remove deletes a post.
func (b *Boards) remove(sessionID string, id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.session(sessionID, false)
	if s == nil {
		return ErrNotFound
	}
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return nil
}

// Sweep evicts idle sessions and returns how many were removed.
func (b *Boards) Sweep() int {
	if b.ttl <= 0 {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	removed := 0
	for id, s := range b.sessions {
		if now.Sub(s.lastSeen) > b.ttl {
			delete(b.sessions, id)
			removed++
		}
	}
	return removed
}

// Sessions returns the number of live sessions.
func (b *Boards) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (b *Boards) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := b.Sweep(); n > 0 {
				b.logger.Debug("evicted idle sessions", "count", n)
			}
		}
	}
}
