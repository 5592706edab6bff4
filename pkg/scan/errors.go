package scan

import "errors"

var (
	// ErrNoInputFiles is returned when no log files could be resolved from
	// the supplied paths. This is fatal for the run: nothing is emitted.
	ErrNoInputFiles = errors.New("scan: no input files found")

	// ErrContextCanceled is returned when the context is canceled mid-scan.
	ErrContextCanceled = errors.New("scan: context canceled")
)
