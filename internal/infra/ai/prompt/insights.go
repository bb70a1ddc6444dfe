package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
)

// MaxInsights caps how many items are kept from a model answer.
const MaxInsights = 6

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a senior contract lawyer reviewing documents for a client. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- insights is an array of 3 to 5 objects, each with a short title and a body of one or two sentences.
- icon is optional; when present use a Font Awesome class such as "fa-lightbulb text-warning".
- You only see file names and clause headings, never the document text. Give general, conservative recommendations.

Schema (example with empty values):
{
  "insights": [
    {"title": "<string>", "icon": "<string>", "body": "<string>"}
  ]
}`
}

// GetUserPrompt builds a compact user message from what the analyzer knows.
func GetUserPrompt(req ai.InsightRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Documents: %s\n", strings.Join(req.FileNames, ", "))
	if len(req.Clauses) > 0 {
		fmt.Fprintf(&b, "Clause headings: %s\n", strings.Join(req.Clauses, "; "))
	}
	if req.Format != "" {
		fmt.Fprintf(&b, "Requested output format: %s\n", req.Format)
	}
	b.WriteString("Respond with the JSON per schema.")
	return b.String()
}

type response struct {
	Insights []ai.Insight `json:"insights"`
}

// ParseInsights decodes a model answer and drops items without a title or body.
func ParseInsights(content string) ([]ai.Insight, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var resp response
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}

	out := make([]ai.Insight, 0, len(resp.Insights))
	for _, it := range resp.Insights {
		it.Title = strings.TrimSpace(it.Title)
		it.Body = strings.TrimSpace(it.Body)
		if it.Title == "" || it.Body == "" {
			continue
		}
		out = append(out, it)
		if len(out) == MaxInsights {
			break
		}
	}
	if len(out) == 0 {
		return nil, errors.New("model returned no usable insights")
	}
	return out, nil
}
