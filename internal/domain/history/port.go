package history

import "context"

// Repository port: append-only log capped at MaxEntries
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// Latest returns up to limit entries, newest first.
	Latest(ctx context.Context, limit int) ([]*Entry, error)
}
