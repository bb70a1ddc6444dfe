package render

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

var genericHighlights = []string{
	"Preamble and Party Identification",
	"Payment Terms and Conditions",
	"Termination Clause",
	"Liability Limitations",
	"Governing Law",
	"Dispute Resolution",
}

const summaryBody = "This document exhibits a conventional contractual architecture with a defined preamble, operative terms, and boilerplate provisions. " +
	"Key areas include %s, as well as %s. " +
	"Payment provisions specify consideration, invoicing cadence, and late-fee triggers; termination provisions define notice, cure windows, and for-cause vs. convenience rights; " +
	"liability provisions establish caps, exclusions, and carve-outs (e.g., IP infringement, confidentiality, data breach). " +
	"Governing law and dispute resolution identify venue and forum (court vs. arbitration), which directly impact enforcement posture and cost profile."

const fileChecklist = `<ul class="ms-3">` +
	`<li><strong>Definitions &amp; Scope:</strong> Parties, defined terms, and service scope appear coherent and non-conflicting.</li>` +
	`<li><strong>Service Levels:</strong> If SLAs are referenced, escalation and service credits should be aligned with operational capacity.</li>` +
	`<li><strong>Confidentiality:</strong> NDA-style obligations likely cover non-public information; check survival period and permitted disclosures.</li>` +
	`<li><strong>Data Handling:</strong> If personal data is processed, cross-reference data processing addendum and transfer mechanisms.</li>` +
	`<li><strong>Change Control:</strong> Amendments typically require mutual written agreement; validate signature blocks and authority.</li>` +
	`</ul>`

const overallSummary = `<p>Overall, the documents reflect a balanced allocation of obligations with moderate risk concentration around payment schedules, termination triggers, and liability boundaries. The contract posture is commercially standard, with targeted areas requiring calibration to business practice and regulatory posture.</p>` +
	`<div class="mt-3"><h6><i class="fas fa-exclamation-triangle me-2"></i>Risk Overview</h6><ul class="ms-3">` +
	`<li><strong>Financial Exposure:</strong> Late-fee multipliers and interest accrual may escalate quickly if invoicing cadence slips.</li>` +
	`<li><strong>Termination Impact:</strong> Short cure periods increase operational risk; asymmetric convenience rights affect continuity planning.</li>` +
	`<li><strong>Liability Caps:</strong> Caps below insurance coverage may be acceptable; carve-outs (IP, confidentiality, data breach) may bypass caps.</li>` +
	`<li><strong>Jurisdiction/Forum:</strong> Out-of-state venue or mandatory arbitration may shift cost and timeline dynamics.</li>` +
	`</ul></div>` +
	`<div class="mt-3"><h6><i class="fas fa-tasks me-2"></i>Recommendations</h6><ol class="ms-3">` +
	`<li>Align <strong>payment milestones</strong> to delivery events; cap late-fee interest and add a grace period.</li>` +
	`<li>Extend <strong>cure periods</strong> for non-material breaches; define material breach thresholds to avoid ambiguity.</li>` +
	`<li>Set <strong>liability cap</strong> to 1-2x annual contract value; ensure explicit carve-outs are narrowly tailored.</li>` +
	`<li>Confirm <strong>IP indemnity</strong> scope (defense, settlement, and damages) and any open-source usage policies.</li>` +
	`<li>Adopt a <strong>neutral venue</strong> or add remote proceedings clause to reduce travel overhead.</li>` +
	`</ol></div>` +
	`<div class="mt-3"><h6><i class="fas fa-shield-alt me-2"></i>Compliance &amp; Privacy</h6><ul class="ms-3">` +
	`<li>Map personal data flows; if applicable, attach a <strong>DPA</strong> with SCCs/IDTA for cross-border transfers.</li>` +
	`<li>Reference <strong>security controls</strong> (ISO 27001/SOC 2), breach notification windows, and audit rights.</li>` +
	`<li>Ensure <strong>record retention</strong> aligns with sector requirements (e.g., financial, healthcare, education).</li>` +
	`</ul></div>` +
	`<div class="mt-3"><h6><i class="fas fa-clock me-2"></i>Timeline &amp; Deliverables</h6><ul class="ms-3">` +
	`<li>Introduce buffer to milestone dates; define acceptance criteria and re-test windows.</li>` +
	`<li>Clarify change-request workflow and pricing for out-of-scope items.</li>` +
	`</ul></div>` +
	`<div class="mt-3"><h6><i class="fas fa-balance-scale me-2"></i>Financials</h6><ul class="ms-3">` +
	`<li>Specify net terms (e.g., Net 30) and invoice dispute resolution steps.</li>` +
	`<li>Cap ancillary fees; document currency, tax handling, and indexation (if any).</li>` +
	`</ul></div>` +
	`<div class="mt-3"><h6><i class="fas fa-lightbulb me-2"></i>Action Items</h6><ul class="ms-3">` +
	`<li>Redline payment, termination, and liability sections per above recommendations.</li>` +
	`<li>Attach DPA and security exhibit if personal data processing is in scope.</li>` +
	`<li>Confirm insurance certificates align to negotiated caps and carve-outs.</li>` +
	`</ul></div>`

// highlights picks the first six sample clauses or the generic six.
func highlights(f documents.UploadedFile) []string {
	if clauses, ok := f.FixedClauses(); ok {
		if len(clauses) > 6 {
			return clauses[:6]
		}
		return clauses
	}
	return genericHighlights
}

// Summary renders the per-file summaries followed by the overall assessment.
func (Renderer) Summary(files []documents.UploadedFile) string {
	var b strings.Builder
	b.WriteString(`<div class="document-summarization">`)
	for _, f := range files {
		hl := highlights(f)
		head, rest := hl, []string(nil)
		if len(hl) > 3 {
			head, rest = hl[:3], hl[3:]
		}
		fmt.Fprintf(&b, `<div class="file-summary mb-4"><h5><i class="fas %s"></i> %s</h5>`, f.Icon(), esc(f.Name))
		fmt.Fprintf(&b, "<p>"+summaryBody+"</p>", joinEsc(head, ", "), joinEsc(rest, ", "))
		b.WriteString(fileChecklist)
		b.WriteString(`</div>`)
	}
	b.WriteString(overallSummary)
	b.WriteString(`</div>`)
	return section("fa-align-left", "Summarization", b.String())
}
