package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/bootstrap"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/config"
	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

// GlobalOptions are shared by every subcommand.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
}

func (g *GlobalOptions) load(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config load error: %w", err)
	}
	// keep the terminal quiet unless asked
	if !g.Verbose {
		cfg.Log.Level = "warn"
	}
	return cfg, bootstrap.NewLogger(cfg, stderr), nil
}

type analyzeOptions struct {
	*GlobalOptions
	format   string
	template string
	sample   string
	out      string
	output   string
	speed    float64
}

func NewAnalyzeCmd(g *GlobalOptions) *cobra.Command {
	o := &analyzeOptions{GlobalOptions: g}
	cmd := &cobra.Command{
		Use:   "analyze [FILE...]",
		Short: "Run the analysis pipeline over local documents or a sample",
		Long: `Run the simulated legal analysis pipeline. Only file names, types and sizes
are used; document content is never read.

Examples:
  # Summary of two contracts
  analyzer analyze lease.pdf nda.docx

  # Clause analysis of the built-in contract sample, saving the HTML report
  analyzer analyze --sample contract --format clauses --out report.html

  # Custom output rendered as JSON
  analyzer analyze lease.pdf --format custom --template json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	cmd.Flags().StringVarP(&o.format, "format", "f", "summary", "Output format (summary, clauses, points, divisions, custom)")
	cmd.Flags().StringVarP(&o.template, "template", "t", "", "Style template for the custom format")
	cmd.Flags().StringVar(&o.sample, "sample", "", "Analyze a built-in sample document (contract, brief)")
	cmd.Flags().StringVar(&o.out, "out", "", "Write the HTML report to this path")
	cmd.Flags().StringVarP(&o.output, "output", "o", "human", "Output format (human, json)")
	cmd.Flags().Float64Var(&o.speed, "speed", 0, "Pipeline speed multiplier (overrides config)")
	return cmd
}

func (o *analyzeOptions) run(ctx context.Context, stdout, stderr io.Writer, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(files) == 0 && o.sample == "" {
		return errors.New("either pass files or use --sample")
	}

	cfg, logger, err := o.load(stderr)
	if err != nil {
		return err
	}
	if o.speed > 0 {
		cfg.Pipeline.Speed = o.speed
	}

	human := o.output != "json"
	var progress io.Writer = io.Discard
	if human {
		progress = stdout
	}

	app, err := bootstrap.Build(ctx, cfg, logger, newStagePrinter(progress))
	if err != nil {
		return err
	}
	defer app.Close()
	svc := app.Service

	sess, err := svc.CreateSession(ctx, domain.ThemeLight)
	if err != nil {
		return err
	}

	var note domain.Notification
	if o.sample != "" {
		_, note, err = svc.LoadSample(ctx, sess.ID, o.sample)
	} else {
		var uploads []documents.Upload
		uploads, err = statUploads(files)
		if err == nil {
			_, note, err = svc.AddFiles(ctx, sess.ID, uploads)
		}
	}
	if err != nil {
		return userError(err)
	}
	if human {
		headerColor.Fprintln(stdout, "Legal Document Analyzer")
		printNotification(stdout, note)
	}

	if _, _, err := svc.SelectFormat(ctx, sess.ID, o.format); err != nil {
		return userError(err)
	}
	if o.template != "" {
		if _, _, err := svc.ConfirmTemplate(ctx, sess.ID, o.template); err != nil {
			return userError(err)
		}
	}

	res, err := svc.RunAnalysis(ctx, sess.ID)
	if err != nil {
		return userError(err)
	}

	if o.out != "" {
		rep, err := svc.ExportReport(ctx, sess.ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.out, rep.HTML, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if human {
			printSuccess(stdout, "Report saved to "+o.out)
		}
	}

	if !human {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printStats(stdout, res)
	return nil
}

// statUploads turns local paths into upload metadata.
func statUploads(paths []string) ([]documents.Upload, error) {
	uploads := make([]documents.Upload, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", p)
		}
		name := filepath.Base(p)
		uploads = append(uploads, documents.Upload{
			Name:     name,
			MIMEType: mime.TypeByExtension(strings.ToLower(filepath.Ext(name))),
			Size:     info.Size(),
		})
	}
	return uploads, nil
}

// userError swaps a validation failure for its notification text.
func userError(err error) error {
	if msg := domain.UserMessage(err); msg != "" {
		return errors.New(msg)
	}
	return err
}

func printStats(w io.Writer, res *domain.Result) {
	fmt.Fprintln(w)
	headerColor.Fprintln(w, "Analysis Results")
	fmt.Fprintf(w, "  Documents:   %d\n", res.DocumentCount)
	fmt.Fprintf(w, "  Clauses:     %d\n", res.ClauseCount)

	risk := successColor
	if res.RiskScore >= 30 {
		risk = warningColor
	}
	risk.Fprintf(w, "  Risk score:  %d%%\n", res.RiskScore)
	infoColor.Fprintf(w, "  Confidence:  %d%%\n", res.ConfidenceScore)
}
