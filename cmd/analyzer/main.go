package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/legal-doc-analyzer/internal/cli"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &cli.GlobalOptions{}
	rootCmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Simulated AI legal document analysis",
		Long: `analyzer runs the legal document analysis pipeline locally: it walks the
six processing stages, scores the documents and writes a self-contained HTML report.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "config.yaml"
	}
	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", defaultConfig, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Show service logs")

	rootCmd.AddCommand(
		cli.NewAnalyzeCmd(g),
		cli.NewHistoryCmd(g),
		cli.NewSamplesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "analyzer version %s\n", version)
		},
	}
}
