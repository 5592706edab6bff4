// Package scan implements log file collection and line-oriented scanning:
// each line is classified against the signature registry and, on a match,
// turned into an occurrence with best-effort metadata.
package scan

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/logsift/logsift/internal/model"
	"github.com/logsift/logsift/pkg/extract"
	"github.com/logsift/logsift/pkg/signature"
)

// Scanner streams files line by line and yields occurrences for lines
// matching the registry. A line contributes at most one occurrence:
// registry order decides which signature owns it.
type Scanner struct {
	cfg      Config
	registry *signature.Registry
}

// NewScanner creates a scanner over the given registry.
func NewScanner(registry *signature.Registry, cfg Config) *Scanner {
	return &Scanner{
		cfg:      cfg.normalized(),
		registry: registry,
	}
}

// ScanFile opens path (decompressing .gz transparently) and scans it to
// completion. The file is closed before returning, even on read failure.
func (s *Scanner) ScanFile(ctx context.Context, path string) ([]*model.Occurrence, error) {
	r, cleanup, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return s.scan(ctx, path, r)
}

// scan reads r line by line with lenient decoding: invalid byte sequences
// are dropped rather than aborting the scan, since logs are not guaranteed
// to be clean text. Line numbers are 1-based.
func (s *Scanner) scan(ctx context.Context, path string, r io.Reader) ([]*model.Occurrence, error) {
	reader := bufio.NewReaderSize(r, s.cfg.BufferSize)

	var occurrences []*model.Occurrence
	lineno := 0

	for {
		select {
		case <-ctx.Done():
			return occurrences, ErrContextCanceled
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return occurrences, err
		}
		if len(line) == 0 && err == io.EOF {
			break
		}

		lineno++
		line = strings.ToValidUTF8(line, "")

		if occ := s.classify(path, lineno, line); occ != nil {
			occurrences = append(occurrences, occ)
		}

		if err == io.EOF {
			break
		}
	}

	return occurrences, nil
}

// classify matches a single line against the registry and builds the
// occurrence on a hit.
func (s *Scanner) classify(path string, lineno int, line string) *model.Occurrence {
	name, ok := s.registry.Match(line)
	if !ok {
		return nil
	}

	ts, _ := extract.Timestamp(line)
	cid, _ := extract.CorrelationID(line)
	sid, _ := extract.SessionID(line)

	return &model.Occurrence{
		ErrorName:     name,
		File:          path,
		Line:          lineno,
		Message:       strings.TrimSpace(line),
		Timestamp:     ts,
		CorrelationID: cid,
		SessionID:     sid,
	}
}
