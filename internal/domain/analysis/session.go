package analysis

import (
	"fmt"
	"time"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

// Session is the application state of one analyzer user: uploads, chosen
// format, pipeline steps and the live result. At most one Result is live.
type Session struct {
	ID             string                   `json:"id"`
	Files          []documents.UploadedFile `json:"files"`
	Format         Format                   `json:"format,omitempty"`
	StyleTemplate  TemplateKind             `json:"style_template,omitempty"`
	Steps          []Step                   `json:"steps"`
	Running        bool                     `json:"running"`
	Result         *Result                  `json:"-"`
	Theme          Theme                    `json:"theme"`
	ThemeSetByUser bool                     `json:"theme_set_by_user"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NewSession returns an empty session using the given starting theme.
func NewSession(id string, theme Theme, now time.Time) *Session {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return &Session{
		ID:        id,
		Steps:     NewSteps(),
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanStart is true when files are uploaded, a format is chosen and, for the
// custom format, a style template is set.
func (s *Session) CanStart() bool {
	if len(s.Files) == 0 || s.Format == "" {
		return false
	}
	return s.Format != FormatCustom || s.StyleTemplate != ""
}

// ValidateStart reports why a run cannot start yet.
func (s *Session) ValidateStart() error {
	if s.Running {
		return ErrRunInProgress
	}
	if len(s.Files) == 0 || s.Format == "" {
		return ErrNothingToAnalyze
	}
	if s.Format == FormatCustom && s.StyleTemplate == "" {
		return ErrTemplateRequired
	}
	return nil
}

// BeginRun validates the session, discards the previous result and resets
// every step to pending.
func (s *Session) BeginRun() error {
	if err := s.ValidateStart(); err != nil {
		return err
	}
	s.Result = nil
	s.Steps = NewSteps()
	s.Running = true
	return nil
}

func (s *Session) stepIndex(id StageID) (int, error) {
	for i := range s.Steps {
		if s.Steps[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown stage %q", id)
}

// StartStage marks a stage active. Its predecessor must already be completed.
func (s *Session) StartStage(id StageID) error {
	i, err := s.stepIndex(id)
	if err != nil {
		return err
	}
	if i > 0 && !s.Steps[i-1].Completed() {
		return fmt.Errorf("%w: %s", ErrStageOrder, id)
	}
	for j := range s.Steps {
		if j != i && s.Steps[j].Status == StepActive {
			return fmt.Errorf("%w: %s still active", ErrStageOrder, s.Steps[j].ID)
		}
	}
	s.Steps[i].Status = StepActive
	s.Steps[i].Progress = 0
	return nil
}

// SetProgress records the bar position of an active stage.
func (s *Session) SetProgress(id StageID, percent int) error {
	i, err := s.stepIndex(id)
	if err != nil {
		return err
	}
	if percent < 0 {
		percent = 0
	}
	if percent > ProgressTicks {
		percent = ProgressTicks
	}
	s.Steps[i].Progress = percent
	return nil
}

// CompleteStage marks an active stage completed.
func (s *Session) CompleteStage(id StageID) error {
	i, err := s.stepIndex(id)
	if err != nil {
		return err
	}
	if s.Steps[i].Status != StepActive {
		return fmt.Errorf("%w: %s is not active", ErrStageOrder, id)
	}
	s.Steps[i].Status = StepCompleted
	if s.Steps[i].HasProgress {
		s.Steps[i].Progress = ProgressTicks
	}
	return nil
}

// Finish stores the run result, replacing any previous one.
func (s *Session) Finish(r *Result) {
	s.Result = r
	s.Running = false
}

func (s *Session) clearSelection() {
	s.Format = ""
	s.StyleTemplate = ""
}

// Clone deep-copies the session so callers can read it without holding locks.
func (s *Session) Clone() *Session {
	c := *s
	c.Files = append([]documents.UploadedFile(nil), s.Files...)
	c.Steps = append([]Step(nil), s.Steps...)
	if s.Result != nil {
		r := *s.Result
		c.Result = &r
	}
	return &c
}

// FileNames lists upload names in order.
func (s *Session) FileNames() []string {
	names := make([]string, 0, len(s.Files))
	for _, f := range s.Files {
		names = append(names, f.Name)
	}
	return names
}
