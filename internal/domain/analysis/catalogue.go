package analysis

// Clause is one entry of the fixed custom-output catalogue
type Clause struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	RiskLevel string   `json:"riskLevel"`
	KeyTerms  []string `json:"keyTerms"`
}

var catalogue = []Clause{
	{
		Title:     "Payment Terms and Conditions",
		Content:   "Defines payment schedules, invoicing cadence, accepted methods, and late-fee triggers. Details dispute workflows and short-pay handling. Includes provisions for currency conversion and tax treatment across jurisdictions.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"payment schedule", "late fees", "currency exchange", "taxes"},
	},
	{
		Title:     "Termination and Cancellation",
		Content:   "Outlines termination for cause and for convenience, associated notice periods, and cure windows. Specifies post-termination cooperation, transition assistance, and data return or destruction obligations.",
		RiskLevel: "High",
		KeyTerms:  []string{"for cause", "convenience", "cure period", "transition"},
	},
	{
		Title:     "Intellectual Property Rights",
		Content:   "Establishes ownership, license scope (territory, exclusivity), and restrictions on use of artifacts created or used under the agreement. Addresses background vs. foreground IP and derivative works.",
		RiskLevel: "Low",
		KeyTerms:  []string{"ownership", "license", "background IP", "derivatives"},
	},
	{
		Title:     "Liability and Indemnification",
		Content:   "Limits aggregate liability, defines excluded damages (indirect, consequential), and specifies indemnification triggers and procedures. Clarifies defense, settlement authority, and cooperation duties.",
		RiskLevel: "High",
		KeyTerms:  []string{"cap", "exclusions", "indemnity", "defense"},
	},
	{
		Title:     "Force Majeure Provisions",
		Content:   "Addresses unforeseen events that impede performance (e.g., natural disasters, strikes, pandemics). Defines notice requirements, mitigation efforts, and duration thresholds for termination rights.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"force majeure", "mitigation", "threshold", "notice"},
	},
	{
		Title:     "Confidentiality and Non-Disclosure",
		Content:   "Imposes obligations to protect non-public information, carve-outs for required disclosures, and survival periods. Describes technical and organizational measures to prevent unauthorized access.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"confidential information", "survival", "carve-outs", "TOMs"},
	},
	{
		Title:     "Data Protection and Security",
		Content:   "Defines personal data processing roles, security controls (ISO/SOC), breach notification timelines, and audit rights. References data processing addendum and cross-border transfer mechanisms.",
		RiskLevel: "High",
		KeyTerms:  []string{"DPA", "SCCs", "breach notice", "audit"},
	},
	{
		Title:     "Service Levels and Support",
		Content:   "Specifies uptime commitments, response/resolution targets, maintenance windows, and service credits. Establishes escalation paths and reporting cadence for incident management.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"SLA", "service credits", "escalation", "uptime"},
	},
	{
		Title:     "Warranties and Disclaimers",
		Content:   "Provides limited warranties (conformity, non-infringement) and associated remedies. Includes standard disclaimers of implied warranties to bound risk exposure.",
		RiskLevel: "Low",
		KeyTerms:  []string{"warranty", "remedy", "disclaimer", "non-infringement"},
	},
	{
		Title:     "Acceptance and Testing",
		Content:   "Defines acceptance criteria, test procedures, re-test rights, and deemed-acceptance triggers. Ties acceptance to milestone payments where applicable.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"criteria", "re-test", "deemed acceptance", "milestones"},
	},
	{
		Title:     "Change Control",
		Content:   "Outlines the process for requesting, assessing, and approving changes in scope, including pricing impacts and timeline adjustments. Establishes governance committee roles.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"CR", "pricing", "timeline", "governance"},
	},
	{
		Title:     "Dispute Resolution",
		Content:   "Specifies negotiation, mediation, and arbitration or court proceedings. Sets venue, governing rules, and cost allocation, with escalation timeframes to avoid deadlock.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"mediation", "arbitration", "venue", "costs"},
	},
	{
		Title:     "Governing Law and Jurisdiction",
		Content:   "Determines the legal system applied to interpret the agreement, and the forum where claims are heard. Influences enforcement strategy and litigation cost profile.",
		RiskLevel: "Low",
		KeyTerms:  []string{"governing law", "jurisdiction", "venue"},
	},
	{
		Title:     "Subcontracting and Assignment",
		Content:   "Controls rights to assign the agreement or subcontract obligations, including consent requirements and accountability for subcontractor performance.",
		RiskLevel: "Low",
		KeyTerms:  []string{"assignment", "consent", "subcontractor", "accountability"},
	},
	{
		Title:     "Pricing and Taxes",
		Content:   "Details base pricing, indexation, pass-through expenses, and tax responsibilities. Clarifies invoice requirements and dispute timelines to prevent billing friction.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"pricing", "indexation", "expenses", "tax"},
	},
	{
		Title:     "Audit and Compliance",
		Content:   "Grants audit rights to verify performance, billing accuracy, and security posture. References compliance with applicable regulations and industry standards.",
		RiskLevel: "Medium",
		KeyTerms:  []string{"audit", "compliance", "standards", "verification"},
	},
}

// Catalogue returns a copy of the fixed 16-clause catalogue.
func Catalogue() []Clause {
	out := make([]Clause, len(catalogue))
	for i, c := range catalogue {
		c.KeyTerms = append([]string(nil), c.KeyTerms...)
		out[i] = c
	}
	return out
}
