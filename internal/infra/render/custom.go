package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

// CustomOutput renders the fixed clause catalogue with the chosen template.
// Unknown kinds fall back to the numbered list.
func (Renderer) CustomOutput(kind analysis.TemplateKind, asOf time.Time) string {
	return FormatClauses(analysis.Catalogue(), kind, asOf)
}

// FormatClauses is the template switch behind CustomOutput.
func FormatClauses(clauses []analysis.Clause, kind analysis.TemplateKind, asOf time.Time) string {
	switch kind {
	case analysis.TemplateBullet:
		return listFormat("ul", "bullet-format", clauses)
	case analysis.TemplateMarkdown:
		return markdownFormat(clauses)
	case analysis.TemplateJSON:
		return jsonFormat(clauses)
	case analysis.TemplateTable:
		return tableFormat(clauses)
	case analysis.TemplateDocumentSummarization:
		return documentSummarization
	case analysis.TemplateSimplification:
		return simplificationFormat(clauses)
	case analysis.TemplateNamedEntities:
		return namedEntityFormat(asOf)
	default:
		return listFormat("ol", "numbered-format", clauses)
	}
}

func clauseItem(c analysis.Clause) string {
	return fmt.Sprintf(`<li class="custom-format-item mb-2"><div><strong>%s</strong></div><div>%s</div><div><em>Risk:</em> %s | <em>Key terms:</em> %s</div></li>`,
		esc(c.Title), esc(c.Content), esc(c.RiskLevel), joinEsc(c.KeyTerms, ", "))
}

func listFormat(tag, class string, clauses []analysis.Clause) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<%s class="%s">`, tag, class)
	for _, c := range clauses {
		b.WriteString(clauseItem(c))
	}
	fmt.Fprintf(&b, `</%s>`, tag)
	return b.String()
}

// Markdown returns the raw markdown document for clauses.
func Markdown(clauses []analysis.Clause) string {
	var md strings.Builder
	for _, c := range clauses {
		fmt.Fprintf(&md, "## %s\n", c.Title)
		fmt.Fprintf(&md, "%s\n\n", c.Content)
		fmt.Fprintf(&md, "**Risk Level:** %s\n", c.RiskLevel)
		fmt.Fprintf(&md, "**Key Terms:** `%s`\n\n", strings.Join(c.KeyTerms, "`, `"))
	}
	return md.String()
}

func markdownFormat(clauses []analysis.Clause) string {
	return `<pre class="markdown-format" style="white-space: pre-wrap;">` + esc(Markdown(clauses)) + `</pre>`
}

func jsonFormat(clauses []analysis.Clause) string {
	// Clause has only strings and string slices; marshalling cannot fail.
	data, _ := json.MarshalIndent(clauses, "", "  ")
	return `<div class="json-format"><pre><code>` + esc(string(data)) + `</code></pre></div>`
}

func tableFormat(clauses []analysis.Clause) string {
	var b strings.Builder
	b.WriteString(`<div class="table-format"><table class="table table-bordered"><thead><tr>`)
	b.WriteString(`<th>Clause</th><th>Description</th><th>Risk Level</th><th>Key Terms</th></tr></thead><tbody>`)
	for _, c := range clauses {
		fmt.Fprintf(&b, `<tr><td><strong>%s</strong></td><td>%s</td><td><span class="risk-%s">%s</span></td><td>%s</td></tr>`,
			esc(c.Title), esc(c.Content), strings.ToLower(esc(c.RiskLevel)), esc(c.RiskLevel), joinEsc(c.KeyTerms, ", "))
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

func simplificationFormat(clauses []analysis.Clause) string {
	var b strings.Builder
	b.WriteString(`<div class="doc-simplification">`)
	for i, c := range clauses {
		fmt.Fprintf(&b, `<div class="custom-format-item mb-3"><h6>%d. %s</h6><ul class="ms-3">`, i+1, esc(c.Title))
		fmt.Fprintf(&b, `<li><strong>Plain meaning:</strong> %s</li>`, esc(c.Content))
		b.WriteString(`<li><strong>Why it matters:</strong> Sets expectations and limits risk for both parties.</li>`)
		b.WriteString(`<li><strong>Watch for:</strong> Tight deadlines, vague acceptance, uncapped fees, broad indemnities.</li>`)
		b.WriteString(`</ul></div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

const documentSummarization = `<div class="doc-summarization"><div class="mt-1">` +
	`<p>The agreement presents a coherent allocation of commercial, operational, and legal responsibilities. Core provisions establish the rhythm of delivery and acceptance, tie payment events to verifiable milestones, and bound exposure through layered warranty and liability constructs. Boilerplate governance, covering law, venue, notice, and assignment, supplies predictability while leaving room for negotiated variance where the transaction scope demands it.</p>` +
	`<p>Commercial posture is driven by the interplay of consideration, timelines, and change control. Where delivery is phased, acceptance criteria and re-test rights should be framed to avoid inadvertent deemed-acceptance while still enabling momentum. Change requests operate as a safety valve for scope drift, converting ambiguity into priced, time-boxed work with clear authority paths. Service levels and credits, when present, translate availability and responsiveness into measurable accountability without distorting incentives.</p>` +
	`<p>Risk consolidates around termination triggers and the definition of breach. Short cure windows and undefined materiality thresholds can transform routine variance into contractual non-compliance. Liability caps are effective where aligned to insurance cover and supported by narrowly tailored carve-outs (for example, IP infringement, confidentiality, and data protection). Indemnity procedure (defense control, settlement consent, and cooperation) often determines the real-world efficiency of risk transfer more than abstract cap math alone.</p>` +
	`<p>On compliance and privacy, personal data processing invites a structured annex that specifies roles, security controls (e.g., ISO 27001/SOC 2 mappings), breach notification clocks, audit protocols, and cross-border transfer mechanisms. These instruments allow legal promises to be operationalized by security and privacy teams. Records and retention clauses should be harmonized with sectoral obligations and internal governance so that evidentiary needs are met without over-collection.</p>` +
	`<p>In execution, timelines benefit from buffer allowances calibrated to upstream dependencies. Acceptance gates should connect to quality signals rather than calendar alone. Financial schedules improve with standardized invoice data, dispute escalation steps, and caps on ancillary charges. Finally, venue selection and remote proceedings clauses can materially reduce adjudication friction while preserving enforceability, especially for distributed teams.</p>` +
	`</div></div>`

type entityGroup struct {
	label string
	items []string
}

func simulatedEntities(asOf time.Time) []entityGroup {
	return []entityGroup{
		{"Parties", []string{"Acme Corp., a Delaware corporation", "ServiceCo LLC, a California limited liability company"}},
		{"Contacts", []string{"Primary Contact: Jane Doe (Acme), jane.doe@acme.com", "Account Manager: John Smith (ServiceCo), john.smith@serviceco.com"}},
		{"Addresses", []string{"Acme HQ: 123 Market St, San Francisco, CA", "ServiceCo HQ: 456 Innovation Way, Austin, TX"}},
		{"Key Dates & Term", []string{
			"Effective Date: " + asOf.Format("1/2/2006"),
			"Initial Term: 12 months",
			"Auto-Renewal: 12-month increments unless notice 30 days prior",
		}},
		{"Monetary & Financial", []string{
			"Contract Value: $350,000 (annual)",
			"Liability Cap: $100,000 (aggregate)",
			"Payment Terms: Net 30; dispute within 10 days",
		}},
		{"Jurisdiction & Disputes", []string{
			"Governing Law: California",
			"Venue: San Francisco County, CA",
			"Dispute Resolution: Mediation then binding arbitration (AAA rules)",
		}},
		{"Intellectual Property", []string{
			"Background IP retained by each party",
			"Foreground IP: owned by Acme; ServiceCo receives non-exclusive, worldwide license",
			"Open Source Use: permitted subject to policy and disclosure",
		}},
		{"Confidentiality", []string{
			"Confidential Info: non-public business, technical, and financial data",
			"Survival: 3 years post-termination",
			"Carve-outs: information already known, independently developed, or legally compelled",
		}},
		{"Data Protection", []string{
			"Roles: Acme (Controller), ServiceCo (Processor)",
			"Security: ISO 27001/SOC 2 aligned controls",
			"Breach Notice: within 72 hours; cooperate on remediation",
		}},
	}
}

const entityAnalysis = `<div class="mt-4"><h6>Entity Analysis</h6>` +
	`<p>The parties are identified with sufficient corporate granularity to support signature authority verification and service of notice. Contact roles align operational ownership with escalation paths, reducing ambiguity during incident response or scope negotiation.</p>` +
	`<p>Term mechanics (initial + auto-renew) mandate calendar controls for renewal decisions. Financial entities (contract value, caps, and net terms) should be reconciled with pricing schedules and insurance coverage to avoid latent exposure or billing friction.</p>` +
	`<p>Jurisdiction and dispute resolution entities collectively shape enforcement posture. A California governing law with AAA arbitration in San Francisco balances predictability and speed; remote proceedings language can further reduce cost overhead for distributed teams.</p>` +
	`<p>IP entities cleanly separate background and foreground rights while allowing operational licensing. Confidentiality entities establish scope, survival, and carve-outs consistent with industry practice. Data protection entities convert privacy promises into operational controls, with breach clocks and cooperation duties enabling structured incident management.</p>` +
	`</div>` +
	`<div class="mt-3"><h6>Follow-ups &amp; Recommendations</h6><ul class="ms-3">` +
	`<li>Confirm party legal names match Secretary of State records; capture DUNS/LEI if required.</li>` +
	`<li>Attach pricing exhibit; validate that the liability cap aligns with insured limits.</li>` +
	`<li>Add remote proceedings clause to arbitration to minimize travel overhead.</li>` +
	`<li>Append DPA and security exhibit; specify control mappings and audit scope.</li>` +
	`<li>Set renewal reminders 45-60 days prior to auto-renewal threshold.</li>` +
	`</ul></div>`

func namedEntityFormat(asOf time.Time) string {
	var b strings.Builder
	b.WriteString(`<div class="entity-summary">`)
	for _, g := range simulatedEntities(asOf) {
		fmt.Fprintf(&b, `<div class="mb-3"><strong>%s:</strong><br>%s</div>`, esc(g.label), joinEsc(g.items, "<br>"))
	}
	b.WriteString(entityAnalysis)
	b.WriteString(`</div>`)
	return b.String()
}
