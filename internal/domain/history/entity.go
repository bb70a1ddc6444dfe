package history

// MaxEntries caps the log; older entries are dropped silently.
const MaxEntries = 200

// Entry is one compact record of a finished analysis
type Entry struct {
	Timestamp           int64   `json:"timestamp"` // unix millis
	SelectedFormat      string  `json:"selectedFormat"`
	CustomStyleTemplate *string `json:"customStyleTemplate"`
	Title               string  `json:"title"`
	PreviewHTML         string  `json:"previewHtml"`
}

// Truncate keeps the newest MaxEntries of an oldest-first slice.
func Truncate(entries []*Entry) []*Entry {
	if len(entries) <= MaxEntries {
		return entries
	}
	return entries[len(entries)-MaxEntries:]
}

// NewestFirst returns up to limit entries of an oldest-first slice in reverse
// order. A limit <= 0 returns all of them.
func NewestFirst(entries []*Entry, limit int) []*Entry {
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	out := make([]*Entry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *entries[i]
		out = append(out, &cp)
	}
	return out
}
