package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/logsift/logsift/pkg/config"
	"github.com/logsift/logsift/pkg/report"
	"github.com/logsift/logsift/pkg/scan"
	"github.com/logsift/logsift/pkg/signature"
	"github.com/logsift/logsift/pkg/telemetry"
	"github.com/logsift/logsift/pkg/tui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan log files and generate error reports",
	Long: `Scan log files and/or directories (searched recursively for recognized
log extensions), classify matching lines against the signature registry,
and write the detailed CSV, summary CSV and Markdown report into the
output directory.

Examples:
  logsift scan -i ./logs -o ./reports
  logsift scan -i psm.txt -i tunnel.txt -o ./reports -b psm
  logsift scan -i ./logs -o ./reports --patterns custom.yaml --json --xlsx`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := config.Global().Get()
	applyScanFlags(cmd, cfg)

	// Configuration faults abort before any scanning.
	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	scanCfg := scan.Config{
		Extensions: cfg.Scan.Extensions,
		BufferSize: cfg.Scan.BufferSize,
		Workers:    cfg.Scan.Workers,
	}

	files := scan.Collect(inputPaths, scanCfg, tui.Warn)
	if len(files) == 0 {
		return fmt.Errorf("%w under the supplied paths", scan.ErrNoInputFiles)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted, cleaning up...")
		cancel()
	}()

	runner := scan.NewRunner(registry, scanCfg)
	runner.SetWarnFunc(tui.Warn)

	// Optional trace export.
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint != "" {
		otlpCfg := telemetry.DefaultOTLPConfig("logsift")
		otlpCfg.Endpoint = cfg.Telemetry.Endpoint
		otlpCfg.ServiceVersion = version

		provider, err := telemetry.Setup(ctx, otlpCfg)
		if err != nil {
			return fmt.Errorf("telemetry setup failed: %w", err)
		}
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			provider.Shutdown(shutdownCtx)
		}()

		tracer := provider.Tracer("logsift/scan")
		runner.SetTracer(tracer)

		var span trace.Span
		ctx, span = tracer.Start(ctx, "logsift.scan",
			trace.WithAttributes(attribute.Int("scan.files", len(files))))
		defer span.End()
	}

	if verbose {
		tui.PrintHeader(version)
		fmt.Printf("Scanning %d file(s) with %d worker(s)...\n", len(files), scanCfg.Workers)
	}

	bar := tui.ShowProgress(int64(len(files)), "scanning")
	runner.SetProgressFunc(func(done, total int64) {
		bar.Add(1)
	})

	startTime := time.Now()
	result, err := runner.Run(ctx, files)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	elapsed := time.Since(startTime)
	bar.Finish()
	tui.ClearLine()

	emitter := report.NewEmitter(outputDir, cfg.Output.Basename)

	artifacts := make([]string, 0, 5)
	detPath, err := emitter.WriteDetailedCSV(result.Occurrences)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, detPath)

	sumPath, err := emitter.WriteSummaryCSV(result.Summary)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, sumPath)

	mdPath, err := emitter.WriteMarkdown(result.Summary)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, mdPath)

	if cfg.Output.JSON {
		jsonPath, err := emitter.WriteJSON(result.Summary)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, jsonPath)
	}

	if cfg.Output.XLSX {
		xlsxPath, err := emitter.WriteXLSX(result.Summary)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, xlsxPath)
	}

	tui.PrintScanReport(&tui.ScanReport{
		FilesScanned: result.FilesScanned,
		FilesSkipped: result.FilesSkipped,
		Categories:   len(result.Summary),
		Occurrences:  len(result.Occurrences),
		Duration:     elapsed,
		Artifacts:    artifacts,
	})

	return nil
}

// applyScanFlags overlays flag values onto the loaded configuration.
// Flags have the highest priority.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("workers") {
		cfg.Scan.Workers = workers
	}
	if cmd.Flags().Changed("basename") {
		cfg.Output.Basename = basename
	}
	if cmd.Flags().Changed("patterns") {
		cfg.Patterns.File = patternsFile
	}
	if cmd.Flags().Changed("json") {
		cfg.Output.JSON = exportJSON
	}
	if cmd.Flags().Changed("xlsx") {
		cfg.Output.XLSX = exportXLSX
	}
	if cmd.Flags().Changed("otlp-endpoint") {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Endpoint = otlpEndpoint
	}
}

// buildRegistry compiles the signature set configured for this run.
func buildRegistry(cfg *config.Config) (*signature.Registry, error) {
	if cfg.Patterns.File != "" {
		return signature.LoadFile(cfg.Patterns.File)
	}
	return signature.DefaultRegistry()
}
