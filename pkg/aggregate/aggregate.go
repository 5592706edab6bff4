// Package aggregate maintains per-error running summaries over a stream of
// occurrences. The engine owns its state explicitly and serializes
// mutation behind a mutex, so per-file scanners may feed it concurrently
// while the count and first/last-seen invariants stay intact.
package aggregate

import (
	"sort"
	"sync"

	"github.com/logsift/logsift/internal/model"
	"github.com/logsift/logsift/pkg/extract"
)

// entry is the mutable aggregation state for one error category.
type entry struct {
	name          string
	count         int
	firstSeen     string
	lastSeen      string
	sampleMessage string
	files         map[string]struct{}
}

// Engine accumulates summary entries across all scanned files. Entries are
// never created speculatively: one exists only after its first occurrence.
type Engine struct {
	mu      sync.Mutex
	entries map[string]*entry
	total   int
}

// New creates an empty aggregation engine.
func New() *Engine {
	return &Engine{entries: make(map[string]*entry)}
}

// Ingest folds one occurrence into the running summary for its category.
func (e *Engine) Ingest(occ *model.Occurrence) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entries[occ.ErrorName]
	if !ok {
		ent = &entry{
			name:          occ.ErrorName,
			firstSeen:     occ.Timestamp,
			lastSeen:      occ.Timestamp,
			sampleMessage: occ.Message,
			files:         make(map[string]struct{}),
		}
		e.entries[occ.ErrorName] = ent
	}

	ent.count++
	e.total++
	ent.files[occ.File] = struct{}{}

	if occ.Timestamp == "" {
		return
	}
	if ent.firstSeen == "" {
		ent.firstSeen = occ.Timestamp
	}
	if ent.lastSeen == "" {
		ent.lastSeen = occ.Timestamp
	}

	// Bounds move only when the stored and incoming timestamps all parse.
	// Chronological ordering is best-effort: a malformed timestamp skips
	// the comparison silently.
	first, okF := extract.ParseInstant(ent.firstSeen)
	last, okL := extract.ParseInstant(ent.lastSeen)
	cur, okC := extract.ParseInstant(occ.Timestamp)
	if !okF || !okL || !okC {
		return
	}
	if cur.Before(first) {
		ent.firstSeen = occ.Timestamp
	}
	if cur.After(last) {
		ent.lastSeen = occ.Timestamp
	}
}

// Total returns the number of occurrences ingested so far. It always
// equals the sum of per-entry counts.
func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total
}

// Finalize returns the full summary, sorted by count descending then name
// ascending, with each entry's affected-file set sorted. No partial
// results are exposed before the scan completes.
func (e *Engine) Finalize() []*model.SummaryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*model.SummaryEntry, 0, len(e.entries))
	for _, ent := range e.entries {
		files := make([]string, 0, len(ent.files))
		for f := range ent.files {
			files = append(files, f)
		}
		sort.Strings(files)

		out = append(out, &model.SummaryEntry{
			ErrorName:     ent.name,
			Count:         ent.count,
			FirstSeen:     ent.firstSeen,
			LastSeen:      ent.lastSeen,
			Files:         files,
			SampleMessage: ent.sampleMessage,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ErrorName < out[j].ErrorName
	})

	return out
}
