package documents

import "sort"

// SampleDocument is a built-in mock file used in place of a real upload.
type SampleDocument struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Type     FileType `json:"type"`
	Size     string   `json:"size"`
	Clauses  []string `json:"clauses,omitempty"`
	Sections []string `json:"sections,omitempty"`
}

var samples = map[string]SampleDocument{
	"contract": {
		Key:  "contract",
		Name: "Contract Agreement Template",
		Type: TypePDF,
		Size: "2.4 MB",
		Clauses: []string{
			"Preamble and Party Identification",
			"Definitions and Interpretations",
			"Scope of Work and Deliverables",
			"Payment Terms and Conditions",
			"Intellectual Property Rights",
			"Confidentiality and Non-Disclosure",
			"Term and Termination",
			"Indemnification",
			"Force Majeure",
			"Governing Law and Jurisdiction",
		},
	},
	"brief": {
		Key:  "brief",
		Name: "Legal Brief Document",
		Type: TypeDOCX,
		Size: "1.8 MB",
		Sections: []string{
			"Statement of Issues",
			"Factual Background",
			"Legal Arguments",
			"Case Law Analysis",
			"Conclusion and Prayer for Relief",
		},
	},
}

// LookupSample returns a copy of the sample registered under key.
func LookupSample(key string) (SampleDocument, bool) {
	s, ok := samples[key]
	if !ok {
		return SampleDocument{}, false
	}
	s.Clauses = append([]string(nil), s.Clauses...)
	s.Sections = append([]string(nil), s.Sections...)
	if len(s.Clauses) == 0 {
		s.Clauses = nil
	}
	if len(s.Sections) == 0 {
		s.Sections = nil
	}
	return s, true
}

// Samples lists every sample ordered by key.
func Samples() []SampleDocument {
	keys := make([]string, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]SampleDocument, 0, len(keys))
	for _, k := range keys {
		s, _ := LookupSample(k)
		out = append(out, s)
	}
	return out
}
