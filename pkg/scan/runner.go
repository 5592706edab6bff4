package scan

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/logsift/logsift/internal/model"
	"github.com/logsift/logsift/pkg/aggregate"
	"github.com/logsift/logsift/pkg/signature"
)

// Result holds the outcome of a full scan run.
type Result struct {
	// Files is the resolved input set, in processing order.
	Files []string

	// FilesScanned counts files read to completion; FilesSkipped counts
	// files that could not be opened or failed mid-read.
	FilesScanned int
	FilesSkipped int

	// Occurrences lists every matched line, in file order then line order.
	Occurrences []*model.Occurrence

	// Summary lists one entry per error category, sorted by count
	// descending then name ascending.
	Summary []*model.SummaryEntry
}

// Runner coordinates scanning across files. Files are scanned concurrently
// up to the worker limit; each worker fills a private occurrence slice and
// the merge into the aggregation engine happens sequentially in sorted
// file order afterwards, so reports are byte-identical across runs
// regardless of worker count.
type Runner struct {
	cfg      Config
	scanner  *Scanner
	warn     WarnFunc
	progress func(done, total int64)
	tracer   trace.Tracer
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *signature.Registry, cfg Config) *Runner {
	cfg = cfg.normalized()
	return &Runner{
		cfg:     cfg,
		scanner: NewScanner(registry, cfg),
		warn:    func(string, ...interface{}) {},
		tracer:  noop.NewTracerProvider().Tracer("logsift/scan"),
	}
}

// SetWarnFunc sets the sink for non-fatal diagnostics.
func (r *Runner) SetWarnFunc(f WarnFunc) {
	if f != nil {
		r.warn = f
	}
}

// SetProgressFunc sets a callback invoked after each file completes.
func (r *Runner) SetProgressFunc(f func(done, total int64)) {
	r.progress = f
}

// SetTracer sets the tracer used for per-file spans.
func (r *Runner) SetTracer(t trace.Tracer) {
	if t != nil {
		r.tracer = t
	}
}

// Run scans all files and returns the merged result. A single unreadable
// file never aborts the run: it is reported through the warn sink and
// skipped. Run fails only on an empty file set or context cancellation.
func (r *Runner) Run(ctx context.Context, files []string) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}

	results := make([][]*model.Occurrence, len(files))
	skipped := make([]bool, len(files))

	var done atomic.Int64
	total := int64(len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			ctx, span := r.tracer.Start(ctx, "scan.file",
				trace.WithAttributes(attribute.String("log.file", path)))
			defer span.End()

			occs, err := r.scanner.ScanFile(ctx, path)
			// Occurrences read before a mid-file failure still count.
			results[i] = occs

			if err != nil {
				if errors.Is(err, ErrContextCanceled) {
					return err
				}
				span.RecordError(err)
				span.SetStatus(codes.Error, "file skipped")
				skipped[i] = true
				r.warn("cannot read %s: %v", path, err)
			}
			span.SetAttributes(attribute.Int("log.occurrences", len(occs)))

			if r.progress != nil {
				r.progress(done.Add(1), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sequential merge in file order keeps sample messages, tie-breaks and
	// report bytes deterministic.
	engine := aggregate.New()
	result := &Result{Files: files}

	for i := range files {
		if skipped[i] {
			result.FilesSkipped++
		} else {
			result.FilesScanned++
		}
		for _, occ := range results[i] {
			engine.Ingest(occ)
			result.Occurrences = append(result.Occurrences, occ)
		}
	}

	result.Summary = engine.Finalize()
	return result, nil
}
