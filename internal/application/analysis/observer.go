package analysis

import (
	"context"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

// observer mirrors runner transitions into the session and the event stream.
type observer struct {
	svc *Service
	id  string
}

func (o *observer) StageStarted(stage domain.StageID) error {
	if _, err := o.svc.Sessions.Update(context.Background(), o.id, func(s *domain.Session) error {
		return s.StartStage(stage)
	}); err != nil {
		return err
	}
	o.svc.publish(domain.Event{Kind: domain.EventStageStarted, SessionID: o.id, Stage: stage})
	return nil
}

func (o *observer) StageProgress(stage domain.StageID, percent int) {
	if _, err := o.svc.Sessions.Update(context.Background(), o.id, func(s *domain.Session) error {
		return s.SetProgress(stage, percent)
	}); err != nil {
		return
	}
	o.svc.publish(domain.Event{Kind: domain.EventStageProgress, SessionID: o.id, Stage: stage, Percent: percent})
}

func (o *observer) StageCompleted(stage domain.StageID) error {
	if _, err := o.svc.Sessions.Update(context.Background(), o.id, func(s *domain.Session) error {
		return s.CompleteStage(stage)
	}); err != nil {
		return err
	}
	o.svc.publish(domain.Event{Kind: domain.EventStageCompleted, SessionID: o.id, Stage: stage})
	return nil
}
