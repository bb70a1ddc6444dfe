package analysis

import (
	"fmt"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

// Command is one user intent applied to a Session through Dispatch.
type Command interface {
	apply(s *Session) (Notification, error)
}

// Dispatch runs cmd against s. While a run is in progress only theme changes
// are accepted.
func Dispatch(s *Session, cmd Command) (Notification, error) {
	if !isThemeCommand(cmd) && s.Running {
		return Notification{}, ErrRunInProgress
	}
	return cmd.apply(s)
}

func isThemeCommand(cmd Command) bool {
	switch cmd.(type) {
	case ToggleTheme, FollowSystemTheme:
		return true
	}
	return false
}

// AddFiles filters uploads through the allow-list and appends the ones whose
// name is not uploaded yet.
type AddFiles struct {
	Uploads []documents.Upload
	NewID   func() string
}

func (c AddFiles) apply(s *Session) (Notification, error) {
	added := 0
	for _, u := range c.Uploads {
		if !documents.IsAllowed(u) || hasFileNamed(s.Files, u.Name) {
			continue
		}
		s.Files = append(s.Files, documents.UploadedFile{
			ID:        c.NewID(),
			Name:      u.Name,
			Size:      documents.FormatFileSize(u.Size),
			SizeBytes: u.Size,
			Type:      documents.DetectType(u.Name),
		})
		added++
	}
	if added == 0 {
		return Notification{}, nil
	}
	return info(fmt.Sprintf("%d document(s) added", added)), nil
}

func hasFileNamed(files []documents.UploadedFile, name string) bool {
	for _, f := range files {
		if f.Name == name {
			return true
		}
	}
	return false
}

// LoadSample replaces the uploads with a built-in sample document.
type LoadSample struct {
	Key   string
	NewID func() string
}

func (c LoadSample) apply(s *Session) (Notification, error) {
	sample, ok := documents.LookupSample(c.Key)
	if !ok {
		return Notification{}, fmt.Errorf("%w: %q", ErrUnknownSample, c.Key)
	}
	s.Files = []documents.UploadedFile{{
		ID:       c.NewID(),
		Name:     sample.Name,
		Size:     sample.Size,
		Type:     sample.Type,
		IsSample: true,
		Sample:   &sample,
	}}
	return success(fmt.Sprintf("Sample document %q loaded successfully!", sample.Name)), nil
}

// RemoveFile drops one upload. Removing the last one clears the format choice.
type RemoveFile struct {
	ID string
}

func (c RemoveFile) apply(s *Session) (Notification, error) {
	var kept []documents.UploadedFile
	for _, f := range s.Files {
		if f.ID != c.ID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(s.Files) {
		return Notification{}, fmt.Errorf("%w: %s", ErrFileNotFound, c.ID)
	}
	s.Files = kept
	if len(s.Files) == 0 {
		s.clearSelection()
	}
	return Notification{}, nil
}

// SelectFormat picks the output format. Choosing custom leaves the start
// action disabled until ConfirmTemplate runs.
type SelectFormat struct {
	Format string
}

func (c SelectFormat) apply(s *Session) (Notification, error) {
	f, err := ParseFormat(c.Format)
	if err != nil {
		return Notification{}, err
	}
	if len(s.Files) == 0 {
		return Notification{}, ErrNoFiles
	}
	s.Format = f
	s.StyleTemplate = ""
	if f == FormatCustom {
		return info("Choose a style template for the custom format."), nil
	}
	return info("Selected format: " + f.Title()), nil
}

// ConfirmTemplate stores the style template of the custom format.
type ConfirmTemplate struct {
	Template string
}

func (c ConfirmTemplate) apply(s *Session) (Notification, error) {
	if s.Format != FormatCustom {
		return Notification{}, ErrNotCustomFormat
	}
	if c.Template == "" {
		return Notification{}, ErrTemplateRequired
	}
	s.StyleTemplate = TemplateKind(c.Template)
	return success("Custom format saved successfully!"), nil
}

// CancelCustom abandons the format selection.
type CancelCustom struct{}

func (CancelCustom) apply(s *Session) (Notification, error) {
	s.clearSelection()
	return Notification{}, nil
}

// ToggleTheme flips between light and dark.
type ToggleTheme struct{}

func (ToggleTheme) apply(s *Session) (Notification, error) {
	s.Theme = s.Theme.Toggle()
	s.ThemeSetByUser = true
	return info("Switched to " + s.Theme.Info().Name), nil
}

// FollowSystemTheme applies an operating-system preference change. It is
// ignored once the user has picked a theme by hand.
type FollowSystemTheme struct {
	Theme Theme
}

func (c FollowSystemTheme) apply(s *Session) (Notification, error) {
	if s.ThemeSetByUser {
		return Notification{}, nil
	}
	if c.Theme == ThemeDark {
		s.Theme = ThemeDark
	} else {
		s.Theme = ThemeLight
	}
	return Notification{}, nil
}

// Reset clears uploads, selection and results.
type Reset struct{}

func (Reset) apply(s *Session) (Notification, error) {
	s.Files = nil
	s.clearSelection()
	s.Result = nil
	s.Steps = NewSteps()
	return info("Analysis reset. You can upload new documents."), nil
}
