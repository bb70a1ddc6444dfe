package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	headerColor  = color.New(color.FgMagenta, color.Bold)
)

func printSuccess(w io.Writer, msg string) { successColor.Fprintf(w, "✓ %s\n", msg) }
func printError(w io.Writer, msg string)   { errorColor.Fprintf(w, "✗ %s\n", msg) }

func printNotification(w io.Writer, n domain.Notification) {
	if n.Empty() {
		return
	}
	switch n.Type {
	case domain.NotifySuccess:
		printSuccess(w, n.Message)
	case domain.NotifyWarning:
		warningColor.Fprintf(w, "! %s\n", n.Message)
	case domain.NotifyDanger:
		printError(w, n.Message)
	default:
		infoColor.Fprintf(w, "ℹ %s\n", n.Message)
	}
}

// stagePrinter renders pipeline events as a spinner line per stage.
type stagePrinter struct {
	mu    sync.Mutex
	out   io.Writer
	spin  *spinner.Spinner
	names map[domain.StageID]string
}

func newStagePrinter(out io.Writer) *stagePrinter {
	names := make(map[domain.StageID]string)
	for _, st := range domain.DefaultStages() {
		names[st.ID] = st.Name
	}
	return &stagePrinter{
		out:   out,
		spin:  spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out)),
		names: names,
	}
}

func (p *stagePrinter) Publish(e domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := p.names[e.Stage]
	switch e.Kind {
	case domain.EventStageStarted:
		p.spin.Suffix = " " + name + "..."
		p.spin.Start()
	case domain.EventStageProgress:
		p.spin.Suffix = fmt.Sprintf(" %s... %d%%", name, e.Percent)
	case domain.EventStageCompleted:
		p.spin.Stop()
		printSuccess(p.out, name)
	}
}
