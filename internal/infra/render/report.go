package render

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

const reportStyle = `body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
.header { border-bottom: 2px solid #ddd; padding-bottom: 20px; margin-bottom: 30px; }
.section { margin-bottom: 30px; }
.stats { display: flex; gap: 20px; margin-bottom: 30px; flex-wrap: wrap; }
.stat { text-align: center; padding: 20px; border: 1px solid #ddd; border-radius: 8px; flex: 1; min-width: 150px; }
.clause-item { margin: 15px 0; padding: 15px; background: #f8f9fa; border-radius: 6px; border-left: 4px solid #007bff; }
.clause-title { font-weight: bold; margin-bottom: 8px; }
.risk-indicator { font-size: 0.8em; padding: 2px 6px; border-radius: 3px; }
.risk-low { background: #d4edda; color: #155724; }
.risk-medium { background: #fff3cd; color: #856404; }
.risk-high { background: #f8d7da; color: #721c24; }
h1, h2, h3, h4, h5 { color: #333; }
.insight-item { margin: 15px 0; padding: 15px; background: #f8f9fa; border-radius: 6px; }
.custom-format-item { margin: 15px 0; padding: 15px; background: #f0f8ff; border-radius: 6px; border-left: 4px solid #ff6b35; }`

// Report assembles the self-contained HTML document offered for download.
func (Renderer) Report(d analysis.ReportData) string {
	r := d.Result
	theme := d.Theme.Info().Name

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Legal Document Analysis Report</title>\n")
	b.WriteString("<style>\n" + reportStyle + "\n</style>\n</head>\n<body>\n")

	b.WriteString(`<div class="header"><h1>AI Legal Document Analysis Report</h1>`)
	fmt.Fprintf(&b, `<p><strong>Generated on:</strong> %s</p>`, d.GeneratedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, `<p><strong>Analysis Format:</strong> %s</p>`, esc(d.Format.Title()))
	fmt.Fprintf(&b, `<p><strong>Files Analyzed:</strong> %s</p>`, joinEsc(d.FileNames, ", "))
	fmt.Fprintf(&b, `<p><strong>Theme Used:</strong> %s</p>`, theme)
	if d.StyleTemplate != "" {
		fmt.Fprintf(&b, `<p><strong>Style Template:</strong> %s</p>`, esc(d.StyleTemplate.Title()))
	}
	b.WriteString("</div>\n")

	b.WriteString(`<div class="stats">`)
	stat := func(value, label string) {
		fmt.Fprintf(&b, `<div class="stat"><h3>%s</h3><p>%s</p></div>`, value, label)
	}
	stat(fmt.Sprint(r.DocumentCount), "Documents Analyzed")
	stat(fmt.Sprint(r.ClauseCount), "Clauses Found")
	stat(fmt.Sprintf("%d%%", r.RiskScore), "Risk Score")
	stat(fmt.Sprintf("%d%%", r.ConfidenceScore), "Confidence Score")
	b.WriteString("</div>\n")

	reportSection(&b, "Analysis Summary", r.Summary)
	if r.CustomOutput != nil {
		reportSection(&b, "Custom Formatted Output", *r.CustomOutput)
	}
	if r.FormatOutput != nil {
		reportSection(&b, d.Format.Title()+" View", *r.FormatOutput)
	}
	reportSection(&b, "Detailed Analysis", r.DetailedAnalysis)
	reportSection(&b, "AI Insights", r.AIInsights)

	b.WriteString(`<div class="footer" style="margin-top: 50px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center; color: #666;">`)
	b.WriteString(`<p>Report generated by AI Legal Document Analyzer v2.0</p>`)
	b.WriteString(`<p>This is a simulated analysis for demonstration purposes</p>`)
	fmt.Fprintf(&b, `<p>Generated using %s</p>`, theme)
	if d.Format == analysis.FormatCustom {
		b.WriteString(`<p>Custom format functionality enabled</p>`)
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func reportSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "<div class=\"section\"><h2>%s</h2>%s</div>\n", esc(title), body)
}
