package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

const (
	insertHistory = `
INSERT INTO analysis_history
  (ts, selected_format, custom_style_template, title, preview_html)
VALUES ($1,$2,$3,$4,$5);
`
	// keeps the newest $1 rows
	pruneHistory = `
DELETE FROM analysis_history
WHERE id NOT IN (SELECT id FROM analysis_history ORDER BY id DESC LIMIT $1);
`
	latestHistory = `
SELECT ts, selected_format, custom_style_template, title, preview_html
FROM analysis_history
ORDER BY id DESC
LIMIT $1;
`
)

// templateParam stores a missing or blank template as NULL.
func templateParam(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func templateValue(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

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

	if _, err := tx.ExecContext(ctx, insertHistory, e.Timestamp, e.SelectedFormat, templateParam(e.CustomStyleTemplate), e.Title, e.PreviewHTML); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pruneHistory, history.MaxEntries); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return tx.Commit()
}

// Latest returns up to limit entries ordered newest first
func (r *HistoryRepository) Latest(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 || limit > history.MaxEntries {
		limit = history.MaxEntries
	}
	rows, err := r.db.QueryContext(ctx, latestHistory, limit)
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
		e.CustomStyleTemplate = templateValue(tpl)
		out = append(out, &e)
	}
	return out, rows.Err()
}
