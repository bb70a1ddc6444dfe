package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

type sessionEntry struct {
	mu   sync.Mutex
	sess *domain.Session
}

// SessionRepo keeps sessions in process memory. Updates to one session are
// serialized; different sessions never block each other.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]*sessionEntry)}
}

func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.sessions[s.ID] = &sessionEntry{sess: s.Clone()}
	return nil
}

func (r *SessionRepo) entry(id string) (*sessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return e, nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Clone(), nil
}

// Update applies fn to a working copy and commits it only when fn succeeds.
func (r *SessionRepo) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.sess.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	e.sess = work
	return work.Clone(), nil
}

// Expire drops idle sessions last touched before cutoff. Running sessions are
// kept whatever their age.
func (r *SessionRepo) Expire(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		idle := !e.sess.Running && e.sess.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Janitor sweeps sessions idle for longer than ttl every interval until ctx
// is done.
func (r *SessionRepo) Janitor(ctx context.Context, interval, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Expire(now.Add(-ttl)); n > 0 && logger != nil {
				logger.Debug("expired idle sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}
