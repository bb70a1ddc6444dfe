package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/application"
	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/history"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/db/memory"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/executor/simulated"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/infra/render"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(e domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) kinds(kind domain.EventKind) []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Event
	for _, e := range p.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type failingHistory struct{}

func (failingHistory) Append(ctx context.Context, e *history.Entry) error {
	return errors.New("quota exceeded")
}

func (failingHistory) Latest(ctx context.Context, limit int) ([]*history.Entry, error) {
	return nil, errors.New("unavailable")
}

type countingMetrics struct {
	mu              sync.Mutex
	started, failed int
	finishedSuccess int
}

func (m *countingMetrics) RunStarted() { m.mu.Lock(); m.started++; m.mu.Unlock() }
func (m *countingMetrics) RunFinished(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.failed++
		return
	}
	m.finishedSuccess++
}

type archive struct {
	key  string
	body []byte
}

func (a *archive) Archive(ctx context.Context, key string, body []byte) (string, error) {
	a.key, a.body = key, body
	return "http://minio.local/reports/" + key, nil
}

var testNow = time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	ids := 0
	return &Service{
		Sessions: memory.NewSessionRepo(),
		Runner: simulated.NewRunner(1).WithSleep(func(ctx context.Context, d time.Duration) error {
			return nil
		}),
		Scorer:   simulated.NewSeededScorer(1),
		Renderer: render.New(),
		History:  memory.NewHistoryRepo(),
		Events:   pub,
		Clock:    application.FixedClock{T: testNow},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		},
	}, pub
}

func mustSession(t *testing.T, svc *Service) string {
	t.Helper()
	sess, err := svc.CreateSession(context.Background(), domain.ThemeLight)
	if err != nil {
		t.Fatal(err)
	}
	return sess.ID
}

func TestRunAnalysisWithContractSample(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestService(t)
	id := mustSession(t, svc)

	if _, _, err := svc.LoadSample(ctx, id, "contract"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.SelectFormat(ctx, id, "clauses"); err != nil {
		t.Fatal(err)
	}
	res, err := svc.RunAnalysis(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if res.DocumentCount != 1 || res.ClauseCount != 10 {
		t.Errorf("counts = %d docs / %d clauses, want 1 / 10", res.DocumentCount, res.ClauseCount)
	}
	if res.FormatOutput == nil || !strings.Contains(*res.FormatOutput, "Payment Terms") {
		t.Error("clauses format should render the sample clause list")
	}
	if res.CustomOutput != nil {
		t.Error("non-custom format must not carry custom output")
	}
	if !strings.Contains(res.AIInsights, "Contract Optimization Recommendation") {
		t.Error("static insights should be used without a backend")
	}

	sess, _ := svc.Session(ctx, id)
	if sess.Running || sess.Result == nil {
		t.Fatal("session should hold the finished result")
	}
	for _, st := range sess.Steps {
		if st.Status != domain.StepCompleted {
			t.Errorf("step %s = %s, want completed", st.ID, st.Status)
		}
		if st.HasProgress && st.Progress != 100 {
			t.Errorf("step %s progress = %d", st.ID, st.Progress)
		}
	}

	started := pub.kinds(domain.EventStageStarted)
	if len(started) != 6 || started[0].Stage != domain.StageUpload || started[5].Stage != domain.StageCompletion {
		t.Errorf("stage.started events = %+v", started)
	}
	if len(pub.kinds(domain.EventAnalysisCompleted)) != 1 {
		t.Error("expected one analysis.completed event")
	}

	entries, _ := svc.ListHistory(ctx, 10)
	if len(entries) != 1 {
		t.Fatalf("history len = %d", len(entries))
	}
	e := entries[0]
	if e.Title != "1 document(s) analyzed" || e.SelectedFormat != "clauses" || e.CustomStyleTemplate != nil {
		t.Errorf("entry = %+v", e)
	}
	if e.PreviewHTML != res.Summary || e.Timestamp != testNow.UnixMilli() {
		t.Error("preview should be the summary and timestamp the generation time")
	}
}

func TestScoresStayInRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	id := mustSession(t, svc)
	_, _, _ = svc.AddFiles(ctx, id, []documents.Upload{{Name: "a.pdf", MIMEType: "application/pdf", Size: 100}})
	_, _, _ = svc.SelectFormat(ctx, id, "summary")

	for i := 0; i < 100; i++ {
		res, err := svc.RunAnalysis(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if res.RiskScore < 15 || res.RiskScore >= 45 || res.ConfidenceScore < 80 || res.ConfidenceScore >= 100 {
			t.Fatalf("scores out of range: %+v", res)
		}
		if res.ClauseCount < 5 || res.ClauseCount >= 20 {
			t.Fatalf("clause count out of range: %d", res.ClauseCount)
		}
		if res.FormatOutput != nil {
			t.Fatal("summary format has no extra section")
		}
	}
}

func TestCustomJSONRun(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	id := mustSession(t, svc)
	_, _, _ = svc.AddFiles(ctx, id, []documents.Upload{{Name: "lease.docx", Size: 2048}})
	_, _, _ = svc.SelectFormat(ctx, id, "custom")

	if _, err := svc.RunAnalysis(ctx, id); !errors.Is(err, domain.ErrTemplateRequired) {
		t.Fatalf("err = %v, want ErrTemplateRequired", err)
	}
	if _, _, err := svc.ConfirmTemplate(ctx, id, "json"); err != nil {
		t.Fatal(err)
	}
	res, err := svc.RunAnalysis(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if res.CustomOutput == nil {
		t.Fatal("custom output missing")
	}
	if *res.CustomOutput != render.New().CustomOutput(domain.TemplateJSON, testNow) {
		t.Error("custom output should be the catalogue rendered as json")
	}

	entries, _ := svc.ListHistory(ctx, 1)
	if entries[0].CustomStyleTemplate == nil || *entries[0].CustomStyleTemplate != "json" {
		t.Errorf("customStyleTemplate = %v", entries[0].CustomStyleTemplate)
	}
	if entries[0].PreviewHTML != *res.CustomOutput {
		t.Error("custom preview should hold the custom output")
	}

	raw, _ := json.Marshal(res)
	if !strings.Contains(string(raw), `"customOutput":"`) {
		t.Errorf("result json = %s", raw)
	}
}

func TestStartValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	id := mustSession(t, svc)

	if _, err := svc.StartAnalysis(ctx, id); !errors.Is(err, domain.ErrNothingToAnalyze) {
		t.Fatalf("err = %v", err)
	}
	if got := domain.UserMessage(domain.ErrNothingToAnalyze); got != "Please upload documents and select an output format." {
		t.Errorf("message = %q", got)
	}
	if _, err := svc.Results(ctx, id); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("results err = %v", err)
	}
	if _, err := svc.ExportReport(ctx, id); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("report err = %v", err)
	}
}

func TestHistoryFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.History = failingHistory{}
	id := mustSession(t, svc)
	_, _, _ = svc.LoadSample(ctx, id, "brief")
	_, _, _ = svc.SelectFormat(ctx, id, "points")

	if _, err := svc.RunAnalysis(ctx, id); err != nil {
		t.Fatalf("history failure must not fail the run: %v", err)
	}
	if _, err := svc.Results(ctx, id); err != nil {
		t.Fatal(err)
	}
}

func TestStartAnalysisRunsInBackground(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	metrics := &countingMetrics{}
	svc.Metrics = metrics
	gate := make(chan struct{})
	svc.Runner = simulated.NewRunner(1).WithSleep(func(ctx context.Context, d time.Duration) error {
		<-gate
		return nil
	})
	id := mustSession(t, svc)
	_, _, _ = svc.LoadSample(ctx, id, "contract")
	_, _, _ = svc.SelectFormat(ctx, id, "summary")

	sess, err := svc.StartAnalysis(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Running {
		t.Fatal("session should be running")
	}
	if _, err := svc.StartAnalysis(ctx, id); !errors.Is(err, domain.ErrRunInProgress) {
		t.Fatalf("second start err = %v", err)
	}
	if _, _, err := svc.Reset(ctx, id); !errors.Is(err, domain.ErrRunInProgress) {
		t.Fatalf("reset during run err = %v", err)
	}
	if _, _, err := svc.ToggleTheme(ctx, id); err != nil {
		t.Fatalf("theme toggle during run: %v", err)
	}
	close(gate)

	finished := func() bool {
		metrics.mu.Lock()
		defer metrics.mu.Unlock()
		return metrics.finishedSuccess == 1
	}
	deadline := time.Now().Add(5 * time.Second)
	for !finished() {
		if time.Now().After(deadline) {
			t.Fatal("run did not finish")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := svc.Results(ctx, id); err != nil {
		t.Fatal(err)
	}
	if metrics.started != 1 || metrics.failed != 0 {
		t.Errorf("started = %d, failed = %d", metrics.started, metrics.failed)
	}
}

func TestFailedRunReleasesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Runner = simulated.NewRunner(1).WithSleep(func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	})
	id := mustSession(t, svc)
	_, _, _ = svc.LoadSample(ctx, id, "contract")
	_, _, _ = svc.SelectFormat(ctx, id, "summary")

	if _, err := svc.RunAnalysis(ctx, id); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	sess, _ := svc.Session(ctx, id)
	if sess.Running {
		t.Fatal("failed run must release the session")
	}
}

func TestNewRunDiscardsPreviousResult(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	metrics := &countingMetrics{}
	svc.Metrics = metrics
	id := mustSession(t, svc)
	_, _, _ = svc.LoadSample(ctx, id, "contract")
	_, _, _ = svc.SelectFormat(ctx, id, "summary")

	if _, err := svc.RunAnalysis(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Results(ctx, id); err != nil {
		t.Fatalf("first run results: %v", err)
	}

	gate := make(chan struct{})
	svc.Runner = simulated.NewRunner(1).WithSleep(func(ctx context.Context, d time.Duration) error {
		<-gate
		return nil
	})
	if _, err := svc.StartAnalysis(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Results(ctx, id); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("results during second run err = %v, want ErrNoResults", err)
	}
	if _, err := svc.ExportReport(ctx, id); !errors.Is(err, domain.ErrNoResults) {
		t.Errorf("report during second run err = %v, want ErrNoResults", err)
	}
	close(gate)

	deadline := time.Now().Add(5 * time.Second)
	for {
		metrics.mu.Lock()
		done := metrics.finishedSuccess == 2
		metrics.mu.Unlock()
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("second run did not finish")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, err := svc.Results(ctx, id); err != nil {
		t.Fatalf("second run results: %v", err)
	}
}

func TestThemeToggleEvent(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestService(t)
	id := mustSession(t, svc)

	sess, note, err := svc.ToggleTheme(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Theme != domain.ThemeDark || note.Message != "Switched to Dark Theme" {
		t.Errorf("theme = %s, note = %q", sess.Theme, note.Message)
	}
	evs := pub.kinds(domain.EventThemeChanged)
	if len(evs) != 1 || evs[0].Theme != domain.ThemeDark {
		t.Errorf("theme events = %+v", evs)
	}
}

func TestSystemThemeFollowsUntilToggled(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestService(t)
	id := mustSession(t, svc)

	sess, _, err := svc.SystemThemeChanged(ctx, id, domain.ThemeDark)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Theme != domain.ThemeDark {
		t.Fatalf("theme = %s", sess.Theme)
	}
	// same preference again is not a change
	_, _, _ = svc.SystemThemeChanged(ctx, id, domain.ThemeDark)
	if evs := pub.kinds(domain.EventThemeChanged); len(evs) != 1 {
		t.Fatalf("theme events = %+v", evs)
	}

	_, _, _ = svc.ToggleTheme(ctx, id)
	sess, _, _ = svc.SystemThemeChanged(ctx, id, domain.ThemeDark)
	if sess.Theme != domain.ThemeLight {
		t.Errorf("manual toggle should win, theme = %s", sess.Theme)
	}
	if evs := pub.kinds(domain.EventThemeChanged); len(evs) != 2 {
		t.Errorf("theme events = %+v", evs)
	}
}

func TestExportReportArchives(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	store := &archive{}
	svc.Reports = store
	id := mustSession(t, svc)
	_, _, _ = svc.LoadSample(ctx, id, "contract")
	_, _, _ = svc.SelectFormat(ctx, id, "summary")
	if _, err := svc.RunAnalysis(ctx, id); err != nil {
		t.Fatal(err)
	}

	rep, err := svc.ExportReport(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if rep.FileName != "legal-analysis-report-2024-03-09.html" {
		t.Errorf("file name = %s", rep.FileName)
	}
	if !strings.HasPrefix(string(rep.HTML), "<!DOCTYPE html>") {
		t.Error("report should be a full html document")
	}
	if store.key != id+"/"+rep.FileName || rep.URL == "" {
		t.Errorf("archive key = %q, url = %q", store.key, rep.URL)
	}
}
