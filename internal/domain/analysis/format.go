package analysis

import (
	"fmt"
	"strings"
)

// Format is the output rendering style picked for a run
type Format string

const (
	FormatSummary   Format = "summary"
	FormatClauses   Format = "clauses"
	FormatPoints    Format = "points"
	FormatDivisions Format = "divisions"
	FormatCustom    Format = "custom"
)

// Formats lists every selectable format in display order.
func Formats() []Format {
	return []Format{FormatSummary, FormatClauses, FormatPoints, FormatDivisions, FormatCustom}
}

// ParseFormat validates a raw format value.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

// Title capitalizes the first letter ("custom" -> "Custom").
func (f Format) Title() string { return capitalize(string(f)) }

// TemplateKind picks the custom-output renderer. Unrecognized kinds are kept
// as-is and rendered like TemplateNumbered.
type TemplateKind string

const (
	TemplateNumbered              TemplateKind = "numbered"
	TemplateBullet                TemplateKind = "bullet"
	TemplateMarkdown              TemplateKind = "markdown"
	TemplateJSON                  TemplateKind = "json"
	TemplateTable                 TemplateKind = "table"
	TemplateDocumentSummarization TemplateKind = "document-summarization"
	TemplateSimplification        TemplateKind = "document-simplification"
	TemplateNamedEntities         TemplateKind = "named-entity-summarization"
)

// TemplateKinds lists the eight known template kinds.
func TemplateKinds() []TemplateKind {
	return []TemplateKind{
		TemplateNumbered, TemplateBullet, TemplateMarkdown, TemplateJSON,
		TemplateTable, TemplateDocumentSummarization, TemplateSimplification, TemplateNamedEntities,
	}
}

// Known reports whether k is one of the eight template kinds.
func (k TemplateKind) Known() bool {
	for _, t := range TemplateKinds() {
		if k == t {
			return true
		}
	}
	return false
}

func (k TemplateKind) Title() string { return capitalize(string(k)) }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
