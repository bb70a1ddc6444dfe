package postgres

import (
	"strings"
	"testing"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

func TestTemplateMapping(t *testing.T) {
	blank := " "
	table := "table"
	if templateParam(nil).Valid || templateParam(&blank).Valid {
		t.Error("nil and blank templates must be stored as NULL")
	}
	ns := templateParam(&table)
	if !ns.Valid || ns.String != "table" {
		t.Errorf("templateParam(table) = %+v", ns)
	}
	if v := templateValue(ns); v == nil || *v != "table" {
		t.Errorf("templateValue = %v", v)
	}
	if templateValue(templateParam(nil)) != nil {
		t.Error("NULL must read back as nil so the JSON shows null")
	}
}

func TestHistoryQueries(t *testing.T) {
	for name, q := range map[string]string{"insert": insertHistory, "prune": pruneHistory, "latest": latestHistory} {
		if strings.Contains(q, "?") {
			t.Errorf("%s uses mysql placeholders: %s", name, q)
		}
	}
	if !strings.Contains(insertHistory, "VALUES ($1,$2,$3,$4,$5)") {
		t.Errorf("insert placeholders: %s", insertHistory)
	}
	// prune keeps the newest rows, so the subquery must order by id descending
	if !strings.Contains(pruneHistory, "NOT IN (SELECT id FROM analysis_history ORDER BY id DESC LIMIT $1)") {
		t.Errorf("prune query: %s", pruneHistory)
	}
	if !strings.Contains(latestHistory, "ORDER BY id DESC") {
		t.Errorf("latest must be newest first: %s", latestHistory)
	}
	if history.MaxEntries != 200 {
		t.Errorf("MaxEntries = %d", history.MaxEntries)
	}
}
