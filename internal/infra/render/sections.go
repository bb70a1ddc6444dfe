package render

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

var clauseContents = map[string]string{
	"Preamble and Party Identification": "This clause identifies the contracting parties and establishes the legal framework for the agreement. Risk level is low with standard identification protocols.",
	"Payment Terms and Conditions":      "Outlines payment schedules, methods, and penalties for late payment. Contains potential cash flow risks that should be monitored.",
	"Termination Clause":                "Specifies conditions under which the contract may be terminated. Review required for notice periods and termination penalties.",
	"Liability Limitations":             "Establishes caps on damages and liability exposure. Important for risk management and insurance planning.",
	"Governing Law":                     "Determines which jurisdiction's laws will apply to the contract. Ensure compatibility with business operations.",
	"Terms and Conditions":              "Standard terms governing the relationship between parties. Review for compliance with applicable regulations.",
	"Payment Obligations":               "Financial commitments and payment terms. Assess impact on cash flow and budgeting requirements.",
	"Intellectual Property Rights":      "Protects creative and intellectual assets. Ensure comprehensive coverage of all relevant IP.",
}

const defaultClauseContent = "This clause requires detailed legal review to assess compliance requirements and potential risk factors."

// ClauseContent returns the canned explanation for a clause title.
func ClauseContent(title string) string {
	if c, ok := clauseContents[title]; ok {
		return c
	}
	return defaultClauseContent
}

// FormatSection renders the view that belongs to the selected format, or ""
// when the format has none.
func (Renderer) FormatSection(f analysis.Format, files []analysis.FileClauses) string {
	switch f {
	case analysis.FormatClauses:
		return clausesSection(files)
	case analysis.FormatPoints:
		return pointsSection
	case analysis.FormatDivisions:
		return divisionsSection
	default:
		return ""
	}
}

func clausesSection(files []analysis.FileClauses) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, `<div class="file-analysis"><h5><i class="fas %s"></i> %s</h5>`, f.FileIcon, esc(f.FileName))
		for _, c := range f.Clauses {
			fmt.Fprintf(&b, `<div class="clause-item"><div class="clause-title">%s <span class="risk-indicator risk-%s"><i class="fas fa-%s"></i> %s</span></div><div class="clause-content">%s</div></div>`,
				esc(c.Title), c.Risk.Level, c.Risk.Icon, c.Risk.Label, esc(ClauseContent(c.Title)))
		}
		b.WriteString(`</div>`)
	}
	return section("fa-list-alt", "Contract Clauses Analysis", b.String())
}

var pointsSection = section("fa-list-ul", "Key Legal Points", `<div class="points-list"><ul class="list-unstyled">`+
	`<li class="mb-3"><i class="fas fa-check-circle text-success me-2"></i><strong>Contract Formation:</strong> All essential elements present including offer, acceptance, and consideration</li>`+
	`<li class="mb-3"><i class="fas fa-exclamation-triangle text-warning me-2"></i><strong>Liability Concerns:</strong> Limited liability clauses may not cover all potential damages</li>`+
	`<li class="mb-3"><i class="fas fa-info-circle text-info me-2"></i><strong>Intellectual Property:</strong> Clear ownership and usage rights defined</li>`+
	`<li class="mb-3"><i class="fas fa-clock text-primary me-2"></i><strong>Term Duration:</strong> Contract period and renewal terms are clearly specified</li>`+
	`<li class="mb-3"><i class="fas fa-gavel text-secondary me-2"></i><strong>Dispute Resolution:</strong> Arbitration clauses present for conflict management</li>`+
	`</ul></div>`)

var divisionsSection = section("fa-sitemap", "Document Structure Analysis", `<div class="divisions-analysis">`+
	`<div class="division-item mb-3"><h5>Section I: Introductory Provisions</h5><p>Contains preamble, definitions, and scope of agreement. Well-structured with clear terminology.</p></div>`+
	`<div class="division-item mb-3"><h5>Section II: Operational Terms</h5><p>Covers performance obligations, timelines, and deliverables. Requires attention to milestone definitions.</p></div>`+
	`<div class="division-item mb-3"><h5>Section III: Financial Provisions</h5><p>Payment terms, penalties, and financial obligations. Review recommended for cash flow impact.</p></div>`+
	`<div class="division-item mb-3"><h5>Section IV: Legal Framework</h5><p>Governing law, jurisdiction, and dispute resolution mechanisms. Standard provisions present.</p></div>`+
	`</div>`)
