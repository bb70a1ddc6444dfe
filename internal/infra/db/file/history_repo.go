package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

// HistoryRepo stores the history log as one JSON array on disk, oldest first.
type HistoryRepo struct {
	mu   sync.Mutex
	path string
}

var _ history.Repository = (*HistoryRepo)(nil)

func NewHistoryRepo(path string) *HistoryRepo {
	return &HistoryRepo{path: path}
}

func (r *HistoryRepo) load() ([]*history.Entry, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []*history.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", r.path, err)
	}
	return entries, nil
}

// save writes through a temp file so a crash never leaves half a log behind.
func (r *HistoryRepo) save(entries []*history.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *HistoryRepo) Append(ctx context.Context, e *history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	return r.save(history.Truncate(append(entries, e)))
}

func (r *HistoryRepo) Latest(ctx context.Context, limit int) ([]*history.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	return history.NewestFirst(entries, limit), nil
}
