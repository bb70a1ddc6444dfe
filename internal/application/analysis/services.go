package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/application"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/ai"
	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
)

// RunMetrics is notified around every analysis run.
type RunMetrics interface {
	RunStarted()
	RunFinished(err error)
}

// Service implements the analyzer use-cases on top of the domain ports.
// Service is safe for concurrent use; per-session serialization is the
// session repository's job.
type Service struct {
	Sessions domain.SessionRepository
	Runner   domain.Runner
	Scorer   domain.Scorer
	Renderer domain.Renderer
	History  history.Repository // optional
	Reports  domain.ReportStore // optional
	Insights ai.Client          // optional
	Events   domain.Publisher   // optional
	Metrics  RunMetrics         // optional
	Clock    application.Clock
	Logger   *slog.Logger
	Stages   []domain.StageSpec
	NewID    func() string
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Service) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

func (s *Service) stages() []domain.StageSpec {
	if len(s.Stages) == 0 {
		return domain.DefaultStages()
	}
	return s.Stages
}

func (s *Service) publish(e domain.Event) {
	if s.Events == nil {
		return
	}
	e.At = s.Clock.Now()
	s.Events.Publish(e)
}

//
// ==== SESSION USE CASES ====
//

// CreateSession opens an empty session with the caller's preferred theme.
func (s *Service) CreateSession(ctx context.Context, theme domain.Theme) (*domain.Session, error) {
	sess := domain.NewSession(s.newID(), theme, s.Clock.Now())
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess.Clone(), nil
}

// Session returns a snapshot of one session.
func (s *Service) Session(ctx context.Context, id string) (*domain.Session, error) {
	return s.Sessions.Get(ctx, id)
}

// Dispatch applies cmd to the session and returns the new state together
// with the notification the command produced.
func (s *Service) Dispatch(ctx context.Context, id string, cmd domain.Command) (*domain.Session, domain.Notification, error) {
	var (
		note domain.Notification
		prev domain.Theme
	)
	sess, err := s.Sessions.Update(ctx, id, func(sess *domain.Session) error {
		var err error
		prev = sess.Theme
		note, err = domain.Dispatch(sess, cmd)
		if err == nil {
			sess.UpdatedAt = s.Clock.Now()
		}
		return err
	})
	if err != nil {
		return nil, domain.Notification{}, err
	}
	if sess.Theme != prev {
		s.publish(domain.Event{Kind: domain.EventThemeChanged, SessionID: id, Theme: sess.Theme})
	}
	return sess, note, nil
}

func (s *Service) AddFiles(ctx context.Context, id string, uploads []documents.Upload) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.AddFiles{Uploads: uploads, NewID: s.newID})
}

func (s *Service) LoadSample(ctx context.Context, id, key string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.LoadSample{Key: key, NewID: s.newID})
}

func (s *Service) RemoveFile(ctx context.Context, id, fileID string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.RemoveFile{ID: fileID})
}

func (s *Service) SelectFormat(ctx context.Context, id, format string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.SelectFormat{Format: format})
}

func (s *Service) ConfirmTemplate(ctx context.Context, id, template string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.ConfirmTemplate{Template: template})
}

func (s *Service) CancelCustom(ctx context.Context, id string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.CancelCustom{})
}

func (s *Service) ToggleTheme(ctx context.Context, id string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.ToggleTheme{})
}

// SystemThemeChanged follows the client's color-scheme preference unless the
// user already toggled the theme.
func (s *Service) SystemThemeChanged(ctx context.Context, id string, theme domain.Theme) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.FollowSystemTheme{Theme: theme})
}

func (s *Service) Reset(ctx context.Context, id string) (*domain.Session, domain.Notification, error) {
	return s.Dispatch(ctx, id, domain.Reset{})
}

//
// ==== ANALYSIS USE CASES ====
//

func (s *Service) begin(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.Sessions.Update(ctx, id, func(sess *domain.Session) error {
		return sess.BeginRun()
	})
	if err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.RunStarted()
	}
	return sess, nil
}

// StartAnalysis validates the session and runs the pipeline in the background.
// The run is detached from ctx so a closed request does not cancel it.
func (s *Service) StartAnalysis(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.begin(ctx, id)
	if err != nil {
		return nil, err
	}
	go func() {
		// pakai background supaya gak kena context canceled dari request
		if _, err := s.run(context.Background(), sess); err != nil {
			s.logger().Error("analysis run failed", "session", id, "error", err)
		}
	}()
	return sess, nil
}

// RunAnalysis runs the pipeline and waits for the result.
func (s *Service) RunAnalysis(ctx context.Context, id string) (*domain.Result, error) {
	sess, err := s.begin(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, sess)
}

func (s *Service) run(ctx context.Context, snap *domain.Session) (*domain.Result, error) {
	log := s.logger().With("session", snap.ID)
	start := s.Clock.Now()
	log.Info("analysis started", "files", len(snap.Files), "format", snap.Format)

	if err := s.Runner.Run(ctx, s.stages(), &observer{svc: s, id: snap.ID}); err != nil {
		_, _ = s.Sessions.Update(context.Background(), snap.ID, func(sess *domain.Session) error {
			sess.Running = false
			sess.UpdatedAt = s.Clock.Now()
			return nil
		})
		if s.Metrics != nil {
			s.Metrics.RunFinished(err)
		}
		return nil, fmt.Errorf("run stages: %w", err)
	}

	res := s.generate(ctx, snap)
	// history first so a visible result always has its entry
	s.recordHistory(ctx, snap, res)
	if _, err := s.Sessions.Update(context.Background(), snap.ID, func(sess *domain.Session) error {
		sess.Finish(res)
		sess.UpdatedAt = res.GeneratedAt
		return nil
	}); err != nil {
		if s.Metrics != nil {
			s.Metrics.RunFinished(err)
		}
		return nil, fmt.Errorf("store result: %w", err)
	}

	s.publish(domain.Event{Kind: domain.EventAnalysisCompleted, SessionID: snap.ID})
	if s.Metrics != nil {
		s.Metrics.RunFinished(nil)
	}
	log.Info("analysis completed",
		"clauses", res.ClauseCount,
		"risk", res.RiskScore,
		"confidence", res.ConfidenceScore,
		"duration_ms", s.Clock.Now().Sub(start).Milliseconds())
	return res, nil
}

// generate builds the result from a snapshot of the session taken when the run began.
func (s *Service) generate(ctx context.Context, snap *domain.Session) *domain.Result {
	now := s.Clock.Now()
	scores := s.Scorer.Score(snap.Files)
	res := &domain.Result{
		DocumentCount:    len(snap.Files),
		ClauseCount:      scores.ClauseCount,
		RiskScore:        scores.RiskScore,
		ConfidenceScore:  scores.ConfidenceScore,
		Summary:          s.Renderer.Summary(snap.Files),
		DetailedAnalysis: s.Renderer.DetailedAnalysis(),
		GeneratedAt:      now,
	}

	switch snap.Format {
	case domain.FormatClauses, domain.FormatPoints, domain.FormatDivisions:
		if out := s.Renderer.FormatSection(snap.Format, s.rateClauses(snap.Files)); out != "" {
			res.FormatOutput = &out
		}
	case domain.FormatCustom:
		out := s.Renderer.CustomOutput(snap.StyleTemplate, now)
		res.CustomOutput = &out
	}

	var items []ai.Insight
	if s.Insights != nil {
		items, _ = s.Insights.Insights(ctx, ai.InsightRequest{
			FileNames: snap.FileNames(),
			Clauses:   clauseTitles(snap.Files),
			Format:    string(snap.Format),
		})
	}
	res.AIInsights = s.Renderer.Insights(items)
	return res
}

func clauseTitles(files []documents.UploadedFile) []string {
	var out []string
	for _, f := range files {
		if fixed, ok := f.FixedClauses(); ok {
			out = append(out, fixed...)
		}
	}
	return out
}

func (s *Service) rateClauses(files []documents.UploadedFile) []domain.FileClauses {
	out := make([]domain.FileClauses, 0, len(files))
	for _, f := range files {
		titles, ok := f.FixedClauses()
		if !ok {
			titles = domain.GenericClauseTitles()
		}
		ratings := s.Scorer.RiskRatings(len(titles))
		fc := domain.FileClauses{FileName: f.Name, FileIcon: f.Icon()}
		for i, t := range titles {
			fc.Clauses = append(fc.Clauses, domain.RatedClause{Title: t, Risk: ratings[i]})
		}
		out = append(out, fc)
	}
	return out
}

// recordHistory appends a compact entry. Storage failures are logged and swallowed.
func (s *Service) recordHistory(ctx context.Context, snap *domain.Session, res *domain.Result) {
	if s.History == nil {
		return
	}
	e := &history.Entry{
		Timestamp:      res.GeneratedAt.UnixMilli(),
		SelectedFormat: string(snap.Format),
		Title:          domain.HistoryTitle(len(snap.Files)),
		PreviewHTML:    res.PreviewHTML(snap.Format),
	}
	if snap.StyleTemplate != "" {
		tpl := string(snap.StyleTemplate)
		e.CustomStyleTemplate = &tpl
	}
	if err := s.History.Append(ctx, e); err != nil {
		s.logger().Warn("failed to save analysis history", "session", snap.ID, "error", err)
	}
}

//
// ==== RESULT USE CASES ====
//

// Results returns the live result of the latest completed run.
func (s *Service) Results(ctx context.Context, id string) (*domain.Result, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Result == nil {
		return nil, domain.ErrNoResults
	}
	return sess.Result, nil
}

// Report is an exported HTML document.
type Report struct {
	FileName string
	HTML     []byte
	URL      string // set when the report was archived
}

// ExportReport renders the live result as a standalone HTML document and
// archives a copy when a report store is configured.
func (s *Service) ExportReport(ctx context.Context, id string) (Report, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if sess.Result == nil {
		return Report{}, domain.ErrNoResults
	}

	now := s.Clock.Now()
	rep := Report{
		FileName: domain.ReportFileName(now),
		HTML: []byte(s.Renderer.Report(domain.ReportData{
			Result:        *sess.Result,
			Format:        sess.Format,
			StyleTemplate: sess.StyleTemplate,
			FileNames:     sess.FileNames(),
			Theme:         sess.Theme,
			GeneratedAt:   now,
		})),
	}

	if s.Reports != nil {
		key := fmt.Sprintf("%s/%s", id, rep.FileName)
		url, err := s.Reports.Archive(ctx, key, rep.HTML)
		if err != nil {
			s.logger().Warn("failed to archive report", "session", id, "error", err)
		} else {
			rep.URL = url
		}
	}
	return rep, nil
}

// ListHistory lists recent analyses, newest first.
func (s *Service) ListHistory(ctx context.Context, limit int) ([]*history.Entry, error) {
	if s.History == nil {
		return []*history.Entry{}, nil
	}
	return s.History.Latest(ctx, limit)
}

// Samples lists the built-in sample documents.
func (s *Service) Samples() []documents.SampleDocument {
	return documents.Samples()
}
