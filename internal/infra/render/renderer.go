// Package render turns analysis data into HTML fragments. Every function is a
// pure transform of its arguments.
package render

import (
	"html"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

// Renderer implements analysis.Renderer
type Renderer struct{}

var _ analysis.Renderer = Renderer{}

func New() Renderer { return Renderer{} }

func esc(s string) string { return html.EscapeString(s) }

func escAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = esc(s)
	}
	return out
}

func joinEsc(items []string, sep string) string {
	return strings.Join(escAll(items), sep)
}

func section(icon, title, body string) string {
	var b strings.Builder
	b.WriteString(`<div class="analysis-section">`)
	b.WriteString(`<h4 class="section-title"><i class="fas ` + icon + `"></i> ` + title + `</h4>`)
	b.WriteString(body)
	b.WriteString(`</div>`)
	return b.String()
}
