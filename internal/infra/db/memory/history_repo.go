package memory

import (
	"context"
	"sync"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

// HistoryRepo is a volatile history log, used when no persistent backend is configured.
type HistoryRepo struct {
	mu      sync.Mutex
	entries []*history.Entry // oldest first
}

var _ history.Repository = (*HistoryRepo)(nil)

func NewHistoryRepo() *HistoryRepo { return &HistoryRepo{} }

func (r *HistoryRepo) Append(ctx context.Context, e *history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.entries = history.Truncate(append(r.entries, &cp))
	return nil
}

func (r *HistoryRepo) Latest(ctx context.Context, limit int) ([]*history.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return history.NewestFirst(r.entries, limit), nil
}
