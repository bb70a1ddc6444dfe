package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

type HistoryRepository struct {
	db *sql.DB
}

var _ history.Repository = (*HistoryRepository)(nil)

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append inserts the entry and prunes everything older than the newest MaxEntries rows.
func (r *HistoryRepository) Append(ctx context.Context, e *history.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insert = `
INSERT INTO analysis_history
  (ts, selected_format, custom_style_template, title, preview_html)
VALUES (?,?,?,?,?);
`
	if _, err := tx.ExecContext(ctx, insert,
		e.Timestamp, e.SelectedFormat, nullable(e.CustomStyleTemplate), e.Title, e.PreviewHTML); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	// MySQL refuses LIMIT inside IN (...) unless wrapped in a derived table
	const prune = `
DELETE FROM analysis_history
WHERE id NOT IN (
  SELECT id FROM (
    SELECT id FROM analysis_history ORDER BY id DESC LIMIT ?
  ) AS keep_rows
);
`
	if _, err := tx.ExecContext(ctx, prune, history.MaxEntries); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return tx.Commit()
}

// Latest returns up to limit entries ordered newest first
func (r *HistoryRepository) Latest(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 || limit > history.MaxEntries {
		limit = history.MaxEntries
	}
	const q = `
SELECT ts, selected_format, custom_style_template, title, preview_html
FROM analysis_history
ORDER BY id DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*history.Entry{}
	for rows.Next() {
		var e history.Entry
		var tpl sql.NullString
		if err := rows.Scan(&e.Timestamp, &e.SelectedFormat, &tpl, &e.Title, &e.PreviewHTML); err != nil {
			return nil, err
		}
		e.CustomStyleTemplate = ptr(tpl)
		out = append(out, &e)
	}
	return out, rows.Err()
}
