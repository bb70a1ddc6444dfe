package analysis

import (
	"fmt"
	"time"
)

// Scores holds the simulated numbers of a run.
type Scores struct {
	ClauseCount     int
	RiskScore       int
	ConfidenceScore int
}

// Score bounds, half-open.
const (
	RiskScoreMin       = 15
	RiskScoreMax       = 45
	ConfidenceScoreMin = 80
	ConfidenceScoreMax = 100
	RandomClausesMin   = 5
	RandomClausesMax   = 20
)

// Result is the live output of the latest run of a session
type Result struct {
	DocumentCount    int       `json:"documentCount"`
	ClauseCount      int       `json:"clauseCount"`
	RiskScore        int       `json:"riskScore"`
	ConfidenceScore  int       `json:"confidenceScore"`
	Summary          string    `json:"summary"`
	DetailedAnalysis string    `json:"detailedAnalysis"`
	AIInsights       string    `json:"aiInsights"`
	CustomOutput     *string   `json:"customOutput"`
	FormatOutput     *string   `json:"formatOutput,omitempty"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// PreviewHTML is the single block kept in history: the custom output when the
// custom format produced one, the summary otherwise.
func (r *Result) PreviewHTML(f Format) string {
	if f == FormatCustom && r.CustomOutput != nil {
		return *r.CustomOutput
	}
	return r.Summary
}

// HistoryTitle names a run after its document count.
func HistoryTitle(documents int) string {
	if documents == 0 {
		return "Analysis Result"
	}
	return fmt.Sprintf("%d document(s) analyzed", documents)
}

// RiskRating is the badge attached to a clause in the clause analysis view
type RiskRating struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var (
	RiskLow    = RiskRating{Level: "low", Label: "Low Risk", Icon: "check-circle"}
	RiskMedium = RiskRating{Level: "medium", Label: "Medium Risk", Icon: "exclamation-triangle"}
	RiskHigh   = RiskRating{Level: "high", Label: "High Risk", Icon: "exclamation-circle"}
)

// RatedClause pairs a clause title with its simulated risk.
type RatedClause struct {
	Title string
	Risk  RiskRating
}

// FileClauses is the clause analysis for one uploaded file.
type FileClauses struct {
	FileName string
	FileIcon string
	Clauses  []RatedClause
}

// GenericClauseTitles is used for files without a predefined clause list.
func GenericClauseTitles() []string {
	return []string{
		"Terms and Conditions",
		"Payment Obligations",
		"Termination Clause",
		"Liability Limitations",
		"Governing Law",
	}
}

// ReportData is everything the report export needs.
type ReportData struct {
	Result        Result
	Format        Format
	StyleTemplate TemplateKind
	FileNames     []string
	Theme         Theme
	GeneratedAt   time.Time
}

// ReportFileName is the download name for a report generated at t.
func ReportFileName(t time.Time) string {
	return fmt.Sprintf("legal-analysis-report-%s.html", t.UTC().Format("2006-01-02"))
}
