package events

import (
	"testing"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

func TestPublishRoutesBySession(t *testing.T) {
	h := NewHub(4)
	a := h.Subscribe("a")
	b := h.Subscribe("b")
	defer a.Close()
	defer b.Close()

	h.Publish(domain.Event{Kind: domain.EventThemeChanged, SessionID: "a", Theme: domain.ThemeDark})

	select {
	case e := <-a.C:
		if e.Theme != domain.ThemeDark {
			t.Errorf("theme = %s", e.Theme)
		}
	default:
		t.Fatal("subscriber a got nothing")
	}
	select {
	case e := <-b.C:
		t.Fatalf("subscriber b got %+v", e)
	default:
	}
}

func TestPublishDropsWhenFull(t *testing.T) {
	h := NewHub(2)
	sub := h.Subscribe("s")
	defer sub.Close()
	for i := 0; i < 10; i++ {
		h.Publish(domain.Event{Kind: domain.EventStageProgress, SessionID: "s", Percent: i})
	}
	if len(sub.C) != 2 {
		t.Fatalf("queued %d events, want 2", len(sub.C))
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	h := NewHub(1)
	sub := h.Subscribe("s")
	if h.Subscribers("s") != 1 {
		t.Fatal("expected one subscriber")
	}
	sub.Close()
	sub.Close()
	if h.Subscribers("s") != 0 {
		t.Fatal("expected no subscribers after close")
	}
	if _, ok := <-sub.C; ok {
		t.Fatal("channel should be closed")
	}
	h.Publish(domain.Event{SessionID: "s"})
}
