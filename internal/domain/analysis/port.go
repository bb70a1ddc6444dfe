package analysis

import (
	"context"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

// SessionRepository port
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// Get returns a copy of the session.
	Get(ctx context.Context, id string) (*Session, error)
	// Update runs fn under the session's lock and returns a copy of the result.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
}

// StageObserver receives pipeline transitions as they happen
type StageObserver interface {
	StageStarted(id StageID) error
	StageProgress(id StageID, percent int)
	StageCompleted(id StageID) error
}

// Runner port: executes stages strictly in sequence
type Runner interface {
	Run(ctx context.Context, stages []StageSpec, obs StageObserver) error
}

// Scorer port: the simulation stand-in for a real analysis backend
type Scorer interface {
	Score(files []documents.UploadedFile) Scores
	RiskRatings(n int) []RiskRating
}

// Renderer port: pure HTML rendering of result sections
type Renderer interface {
	Summary(files []documents.UploadedFile) string
	DetailedAnalysis() string
	Insights(items []ai.Insight) string
	FormatSection(f Format, files []FileClauses) string
	CustomOutput(kind TemplateKind, asOf time.Time) string
	Report(d ReportData) string
}

// ReportStore port (archive for exported reports)
type ReportStore interface {
	Archive(ctx context.Context, key string, body []byte) (string, error)
}

// Publisher port
type Publisher interface {
	Publish(e Event)
}
