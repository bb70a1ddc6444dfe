package analysis

import "time"

// EventKind enum
type EventKind string

const (
	EventStageStarted      EventKind = "stage.started"
	EventStageProgress     EventKind = "stage.progress"
	EventStageCompleted    EventKind = "stage.completed"
	EventAnalysisCompleted EventKind = "analysis.completed"
	EventThemeChanged      EventKind = "theme.changed"
)

// Event is broadcast to any listener of a session.
type Event struct {
	Kind      EventKind `json:"kind"`
	SessionID string    `json:"session_id"`
	Stage     StageID   `json:"stage,omitempty"`
	Percent   int       `json:"percent,omitempty"`
	Theme     Theme     `json:"theme,omitempty"`
	At        time.Time `json:"at"`
}
