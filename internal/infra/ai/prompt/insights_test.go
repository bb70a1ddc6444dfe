package prompt

import (
	"strings"
	"testing"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
)

func TestGetUserPrompt(t *testing.T) {
	got := GetUserPrompt(ai.InsightRequest{
		FileNames: []string{"lease.pdf", "nda.docx"},
		Clauses:   []string{"Governing Law"},
		Format:    "clauses",
	})
	for _, want := range []string{"lease.pdf, nda.docx", "Governing Law", "clauses"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt %q missing %q", got, want)
		}
	}
}

func TestParseInsights(t *testing.T) {
	raw := "```json\n" + `{"insights":[{"title":"Cap liability","body":"Add a cap."},{"title":"","body":"dropped"}]}` + "\n```"
	got, err := ParseInsights(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "Cap liability" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseInsightsRejectsEmpty(t *testing.T) {
	for _, raw := range []string{`{"insights":[]}`, `not json`} {
		if _, err := ParseInsights(raw); err == nil {
			t.Errorf("ParseInsights(%q) should fail", raw)
		}
	}
}
