package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/bootstrap"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
)

func NewHistoryCmd(g *GlobalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), g, cmd.OutOrStdout(), cmd.ErrOrStderr(), limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries")
	return cmd
}

func runHistory(ctx context.Context, g *GlobalOptions, stdout, stderr io.Writer, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, err := g.load(stderr)
	if err != nil {
		return err
	}
	app, err := bootstrap.Build(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	entries, err := app.Service.ListHistory(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		infoColor.Fprintln(stdout, "No analyses yet.")
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tFORMAT\tTEMPLATE\tTITLE")
	for _, e := range entries {
		tpl := "-"
		if e.CustomStyleTemplate != nil {
			tpl = *e.CustomStyleTemplate
		}
		when := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", when, e.SelectedFormat, tpl, e.Title)
	}
	return tw.Flush()
}

func NewSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample documents",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, s := range documents.Samples() {
				headerColor.Fprintf(out, "%s", s.Key)
				fmt.Fprintf(out, "  %s (%s, %s)\n", s.Name, s.Type, s.Size)
				items := s.Clauses
				if len(items) == 0 {
					items = s.Sections
				}
				for _, it := range items {
					fmt.Fprintf(out, "    - %s\n", it)
				}
			}
		},
	}
}
