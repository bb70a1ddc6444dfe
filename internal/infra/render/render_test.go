package render

import (
	"encoding/json"
	"html"
	"strings"
	"testing"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

var asOf = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func between(t *testing.T, s, open, close string) string {
	t.Helper()
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j < i {
		t.Fatalf("%q ... %q not found in %q", open, close, s)
	}
	return s[i+len(open) : j]
}

func TestJSONTemplateRoundTrips(t *testing.T) {
	out := New().CustomOutput(analysis.TemplateJSON, asOf)
	raw := html.UnescapeString(between(t, out, "<code>", "</code>"))

	var got []analysis.Clause
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("json output does not parse: %v\n%s", err, raw)
	}
	want := analysis.Catalogue()
	if len(got) != 16 || len(want) != 16 {
		t.Fatalf("got %d clauses, catalogue has %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i].Title {
			t.Errorf("clause %d title = %q, want %q", i, got[i].Title, want[i].Title)
		}
	}
}

func TestUnknownTemplateFallsBackToNumbered(t *testing.T) {
	r := New()
	numbered := r.CustomOutput(analysis.TemplateNumbered, asOf)
	for _, kind := range []analysis.TemplateKind{"", "haiku", "NUMBERED"} {
		if got := r.CustomOutput(kind, asOf); got != numbered {
			t.Errorf("template %q did not fall back to numbered output", kind)
		}
	}
	if !strings.HasPrefix(numbered, `<ol class="numbered-format">`) {
		t.Errorf("numbered output starts with %q", numbered[:40])
	}
}

func TestEveryTemplateIsDeterministic(t *testing.T) {
	r := New()
	seen := map[string]analysis.TemplateKind{}
	for _, kind := range analysis.TemplateKinds() {
		a := r.CustomOutput(kind, asOf)
		if a == "" {
			t.Errorf("%s rendered nothing", kind)
		}
		if b := r.CustomOutput(kind, asOf); a != b {
			t.Errorf("%s is not deterministic", kind)
		}
		if other, dup := seen[a]; dup {
			t.Errorf("%s renders the same as %s", kind, other)
		}
		seen[a] = kind
	}
}

func TestMarkdownTemplateEscapesAndLists(t *testing.T) {
	md := Markdown(analysis.Catalogue()[:1])
	want := "## Payment Terms and Conditions\n"
	if !strings.HasPrefix(md, want) {
		t.Errorf("markdown = %q", md)
	}
	if !strings.Contains(md, "**Key Terms:** `payment schedule`, `late fees`, `currency exchange`, `taxes`") {
		t.Errorf("key terms line missing in %q", md)
	}
}

func TestNamedEntitiesUseDate(t *testing.T) {
	out := New().CustomOutput(analysis.TemplateNamedEntities, asOf)
	if !strings.Contains(out, "Effective Date: 3/4/2026") {
		t.Error("effective date not rendered from asOf")
	}
}

func TestSummaryHighlights(t *testing.T) {
	contract, _ := documents.LookupSample("contract")
	files := []documents.UploadedFile{
		{Name: "Contract Agreement Template", Type: documents.TypePDF, IsSample: true, Sample: &contract},
		{Name: "<evil>.pdf", Type: documents.TypePDF},
	}
	out := New().Summary(files)

	if !strings.Contains(out, "Key areas include Preamble and Party Identification, Definitions and Interpretations, Scope of Work and Deliverables, as well as Payment Terms and Conditions, Intellectual Property Rights, Confidentiality and Non-Disclosure.") {
		t.Error("sample highlights not interpolated")
	}
	if !strings.Contains(out, "Termination Clause, as well as Liability Limitations, Governing Law, Dispute Resolution") {
		t.Error("generic highlights missing for uploaded file")
	}
	if strings.Contains(out, "<evil>") || !strings.Contains(out, "&lt;evil&gt;.pdf") {
		t.Error("file names must be escaped")
	}
	if strings.Count(out, `class="file-summary`) != 2 {
		t.Error("one summary block per file expected")
	}
}

func TestFormatSection(t *testing.T) {
	r := New()
	if r.FormatSection(analysis.FormatSummary, nil) != "" {
		t.Error("summary has no extra section")
	}
	out := r.FormatSection(analysis.FormatClauses, []analysis.FileClauses{{
		FileName: "a.pdf",
		FileIcon: "fa-file-pdf",
		Clauses:  []analysis.RatedClause{{Title: "Governing Law", Risk: analysis.RiskHigh}, {Title: "Odd Clause", Risk: analysis.RiskLow}},
	}})
	if !strings.Contains(out, "risk-high") || !strings.Contains(out, esc(ClauseContent("Governing Law"))) {
		t.Error("clause section missing risk badge or content")
	}
	if !strings.Contains(out, defaultClauseContent) {
		t.Error("unknown clause must use the default content")
	}
	if !strings.Contains(r.FormatSection(analysis.FormatPoints, nil), "Key Legal Points") {
		t.Error("points section missing")
	}
	if !strings.Contains(r.FormatSection(analysis.FormatDivisions, nil), "Document Structure Analysis") {
		t.Error("divisions section missing")
	}
}

func TestInsights(t *testing.T) {
	r := New()
	def := r.Insights(nil)
	if strings.Count(def, "insight-item") != 4 {
		t.Errorf("default insights count wrong: %s", def)
	}
	custom := r.Insights([]ai.Insight{{Title: "T<1>", Body: "B"}})
	if !strings.Contains(custom, "T&lt;1&gt;") || strings.Count(custom, "insight-item") != 1 {
		t.Errorf("custom insights = %s", custom)
	}
}

func TestReport(t *testing.T) {
	custom := "<ol>custom</ol>"
	d := analysis.ReportData{
		Result: analysis.Result{
			DocumentCount: 2, ClauseCount: 15, RiskScore: 20, ConfidenceScore: 90,
			Summary: "<p>summary</p>", DetailedAnalysis: "<p>detail</p>", AIInsights: "<p>insight</p>",
			CustomOutput: &custom,
		},
		Format:        analysis.FormatCustom,
		StyleTemplate: analysis.TemplateTable,
		FileNames:     []string{"a.pdf", "b.docx"},
		Theme:         analysis.ThemeDark,
		GeneratedAt:   asOf,
	}
	out := New().Report(d)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<strong>Analysis Format:</strong> Custom",
		"<strong>Files Analyzed:</strong> a.pdf, b.docx",
		"<strong>Theme Used:</strong> Dark Theme",
		"<strong>Style Template:</strong> Table",
		"<h3>20%</h3>",
		"Custom Formatted Output",
		"<ol>custom</ol>",
		"Custom format functionality enabled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	d.Result.CustomOutput = nil
	d.Format = analysis.FormatSummary
	d.StyleTemplate = ""
	out = New().Report(d)
	if strings.Contains(out, "Custom Formatted Output") || strings.Contains(out, "Style Template") {
		t.Error("non-custom report must omit custom sections")
	}
}
