package render

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
)

// DefaultInsights are shown whenever no insights backend answered.
func DefaultInsights() []ai.Insight {
	return []ai.Insight{
		{
			Title: "Contract Optimization Recommendation",
			Icon:  "fa-lightbulb text-warning",
			Body:  "Based on analysis of similar contracts, consider adding a force majeure clause with pandemic-specific language to enhance protection against unforeseen circumstances.",
		},
		{
			Title: "Risk Mitigation Suggestion",
			Icon:  "fa-shield-alt text-info",
			Body:  "The current liability limitation may not provide adequate protection. Industry standard caps are typically 1.5-2x the contract value for similar agreements.",
		},
		{
			Title: "Compliance Enhancement",
			Icon:  "fa-trending-up text-success",
			Body:  "Consider adding data privacy clauses to ensure GDPR and CCPA compliance, especially if the contract involves processing personal information.",
		},
		{
			Title: "Timeline Analysis",
			Icon:  "fa-clock text-primary",
			Body:  "Performance deadlines appear ambitious compared to industry benchmarks. Consider building in buffer time for critical deliverables.",
		},
	}
}

// Insights renders insight items; an empty list renders the defaults.
func (Renderer) Insights(items []ai.Insight) string {
	if len(items) == 0 {
		items = DefaultInsights()
	}
	var b strings.Builder
	b.WriteString(`<div class="insights-content">`)
	for _, it := range items {
		icon := it.Icon
		if icon == "" {
			icon = "fa-lightbulb text-warning"
		}
		fmt.Fprintf(&b, `<div class="insight-item mb-4"><div class="insight-header mb-2"><i class="fas %s me-2"></i><h6 class="d-inline">%s</h6></div><p>%s</p></div>`,
			esc(icon), esc(it.Title), esc(it.Body))
	}
	b.WriteString(`</div>`)
	return section("fa-brain", "AI-Powered Insights", b.String())
}
