// LogSift - Batch log error categorizer
// Scans plain-text log collections against a registry of named error
// signatures and emits CSV, Markdown, JSON and XLSX reports.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsift/logsift/pkg/scan"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	inputPaths   []string
	outputDir    string
	basename     string
	patternsFile string
	workers      int
	exportJSON   bool
	exportXLSX   bool
	otlpEndpoint string
	verbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, scan.ErrNoInputFiles) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "logsift",
	Short: "LogSift - Categorize log errors and generate reports",
	Long: `LogSift scans plain-text log files, classifies matching lines against a
curated registry of named error signatures, and aggregates per-error
statistics (count, first/last occurrence, affected files) into CSV,
Markdown and optional JSON/XLSX reports.

Examples:
  logsift scan -i ./logs -o ./reports
  logsift scan -i psm.txt -i ./archive -o ./reports -b psm --json
  logsift patterns`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	scanCmd.Flags().StringArrayVarP(&inputPaths, "input", "i", nil, "Log files and/or directories (repeatable, required)")
	scanCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for reports (required)")
	scanCmd.Flags().StringVarP(&basename, "basename", "b", "", "Prefix for emitted artifact file names")
	scanCmd.Flags().StringVar(&patternsFile, "patterns", "", "YAML signature file (replaces built-in set)")
	scanCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent file scans (0 = config default)")
	scanCmd.Flags().BoolVar(&exportJSON, "json", false, "Also emit the machine-readable JSON summary")
	scanCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "Also emit the XLSX summary")
	scanCmd.Flags().StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC endpoint for trace export (optional)")
	scanCmd.MarkFlagRequired("input")
	scanCmd.MarkFlagRequired("output")

	patternsCmd.Flags().StringVar(&patternsFile, "patterns", "", "YAML signature file (replaces built-in set)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(patternsCmd)
}
