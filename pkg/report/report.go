// Package report serializes scan results into the output artifacts: a
// detailed CSV (one row per occurrence), a summary CSV, a human-readable
// Markdown report, and optional JSON and XLSX dumps of the summary.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logsift/logsift/internal/model"
)

// Emitter writes report artifacts under OutDir, prefixing every file name
// with Basename.
type Emitter struct {
	OutDir   string
	Basename string
}

// NewEmitter creates an emitter. An empty basename defaults to "logs".
func NewEmitter(outDir, basename string) *Emitter {
	if basename == "" {
		basename = "logs"
	}
	return &Emitter{OutDir: outDir, Basename: basename}
}

// artifact builds the full path for an artifact suffix.
func (e *Emitter) artifact(suffix string) string {
	return filepath.Join(e.OutDir, e.Basename+suffix)
}

// WriteDetailedCSV writes one row per occurrence. The extracted metadata
// fields are intentionally omitted from this artifact: they are captured
// in the data model for future consumers, not written here.
func (e *Emitter) WriteDetailedCSV(occurrences []*model.Occurrence) (string, error) {
	path := e.artifact("_erros_detalhados.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"error_name", "file", "line", "message"}); err != nil {
		return "", err
	}
	for _, occ := range occurrences {
		row := []string{occ.ErrorName, occ.File, strconv.Itoa(occ.Line), occ.Message}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// WriteSummaryCSV writes one row per summary entry. Entries are written in
// the order given (count descending, name ascending from the aggregator),
// with affected files semicolon-joined.
func (e *Emitter) WriteSummaryCSV(entries []*model.SummaryEntry) (string, error) {
	path := e.artifact("_erros_resumo.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"error_name", "count", "first_seen", "last_seen", "files", "sample_message"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, ent := range entries {
		row := []string{
			ent.ErrorName,
			strconv.Itoa(ent.Count),
			ent.FirstSeen,
			ent.LastSeen,
			strings.Join(ent.Files, ";"),
			ent.SampleMessage,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}
