package analysis

import "errors"

var (
	ErrNothingToAnalyze = errors.New("no documents uploaded or no output format selected")
	ErrTemplateRequired = errors.New("custom format requires a style template")
	ErrNoResults        = errors.New("no analysis results available")
	ErrNoFiles          = errors.New("no documents uploaded")
	ErrNotCustomFormat  = errors.New("style templates apply only to the custom format")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownSample    = errors.New("unknown sample document")
	ErrFileNotFound     = errors.New("file not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrRunInProgress    = errors.New("analysis already in progress")
	ErrStageOrder       = errors.New("stage started before its predecessor completed")
)

// userMessages holds the notification text shown for validation failures.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrNothingToAnalyze, "Please upload documents and select an output format."},
	{ErrTemplateRequired, "Please select a style template for the custom format."},
	{ErrNoResults, "No analysis results available to download."},
	{ErrNoFiles, "Please upload documents before choosing an output format."},
	{ErrNotCustomFormat, "Select the custom format before choosing a style template."},
	{ErrRunInProgress, "An analysis is already running. Please wait for it to finish."},
}

// UserMessage returns the notification text for err, or "" when err is not a
// user-facing validation failure.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return ""
}
