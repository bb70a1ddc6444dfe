package simulated

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

type recorder struct {
	events   []string
	progress map[domain.StageID][]int
	failOn   domain.StageID
}

func (r *recorder) StageStarted(id domain.StageID) error {
	if id == r.failOn {
		return errors.New("boom")
	}
	r.events = append(r.events, "start:"+string(id))
	return nil
}

func (r *recorder) StageProgress(id domain.StageID, p int) {
	if r.progress == nil {
		r.progress = map[domain.StageID][]int{}
	}
	r.progress[id] = append(r.progress[id], p)
}

func (r *recorder) StageCompleted(id domain.StageID) error {
	r.events = append(r.events, "done:"+string(id))
	return nil
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestRunnerSequence(t *testing.T) {
	var slept []time.Duration
	r := NewRunner(1).WithSleep(func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	})
	rec := &recorder{}
	if err := r.Run(context.Background(), domain.DefaultStages(), rec); err != nil {
		t.Fatal(err)
	}

	var want []string
	for _, st := range domain.DefaultStages() {
		want = append(want, "start:"+string(st.ID), "done:"+string(st.ID))
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v", rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, rec.events[i], want[i])
		}
	}

	if len(rec.progress) != 4 {
		t.Errorf("progress reported for %d stages, want 4", len(rec.progress))
	}
	ext := rec.progress[domain.StageExtraction]
	if len(ext) != domain.ProgressTicks+1 || ext[0] != 0 || ext[len(ext)-1] != 100 {
		t.Errorf("extraction progress = %v", ext)
	}
	if _, ok := rec.progress[domain.StageUpload]; ok {
		t.Error("upload stage has no progress bar")
	}

	// 2 plain waits + 4 bars of 101 ticks
	if len(slept) != 2+4*101 {
		t.Errorf("sleep calls = %d", len(slept))
	}
	if slept[0] != 500*time.Millisecond || slept[1] != 20*time.Millisecond {
		t.Errorf("first sleeps = %v, %v", slept[0], slept[1])
	}
}

func TestRunnerSpeed(t *testing.T) {
	var first time.Duration
	r := NewRunner(10).WithSleep(func(ctx context.Context, d time.Duration) error {
		if first == 0 {
			first = d
		}
		return nil
	})
	if err := r.Run(context.Background(), domain.DefaultStages()[:1], &recorder{}); err != nil {
		t.Fatal(err)
	}
	if first != 50*time.Millisecond {
		t.Errorf("scaled delay = %v", first)
	}
}

func TestRunnerStopsOnObserverError(t *testing.T) {
	rec := &recorder{failOn: domain.StageNLTK}
	err := NewRunner(1).WithSleep(noSleep).Run(context.Background(), domain.DefaultStages(), rec)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := rec.events[len(rec.events)-1]; got != "done:"+string(domain.StageExtraction) {
		t.Errorf("last event = %s", got)
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewSeededScorer(42)
	files := []documents.UploadedFile{{Name: "a.pdf"}, {Name: "b.docx"}}
	for i := 0; i < 2000; i++ {
		sc := s.Score(files)
		if sc.RiskScore < 15 || sc.RiskScore >= 45 {
			t.Fatalf("risk score %d out of [15,45)", sc.RiskScore)
		}
		if sc.ConfidenceScore < 80 || sc.ConfidenceScore >= 100 {
			t.Fatalf("confidence score %d out of [80,100)", sc.ConfidenceScore)
		}
		if sc.ClauseCount < 10 || sc.ClauseCount >= 40 {
			t.Fatalf("clause count %d out of range for two files", sc.ClauseCount)
		}
	}
}

func TestScoreUsesFixedClauses(t *testing.T) {
	contract, _ := documents.LookupSample("contract")
	brief, _ := documents.LookupSample("brief")
	s := NewSeededScorer(7)
	for i := 0; i < 50; i++ {
		sc := s.Score([]documents.UploadedFile{{IsSample: true, Sample: &contract}})
		if sc.ClauseCount != 10 {
			t.Fatalf("contract clause count = %d, want 10", sc.ClauseCount)
		}
	}
	sc := s.Score([]documents.UploadedFile{{IsSample: true, Sample: &brief}})
	if sc.ClauseCount < 5 || sc.ClauseCount >= 20 {
		t.Errorf("brief (no clause list) count = %d", sc.ClauseCount)
	}
}

func TestRiskRatingsWeighted(t *testing.T) {
	ratings := NewSeededScorer(1).RiskRatings(10000)
	counts := map[string]int{}
	for _, r := range ratings {
		counts[r.Level]++
	}
	if counts["low"] < counts["medium"] || counts["medium"] < counts["high"] || counts["high"] == 0 {
		t.Errorf("unexpected distribution %v", counts)
	}
}
