package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/logsift/logsift/internal/model"
)

// summaryJSON is the machine-readable shape of one summary entry.
type summaryJSON struct {
	ErrorName     string   `json:"error_name"`
	Count         int      `json:"count"`
	FirstSeen     string   `json:"first_seen"`
	LastSeen      string   `json:"last_seen"`
	Files         []string `json:"files"`
	SampleMessage string   `json:"sample_message"`
}

// WriteJSON writes the machine-readable summary dump: an object keyed by
// error name, with affected files as a sorted array.
func (e *Emitter) WriteJSON(entries []*model.SummaryEntry) (string, error) {
	path := e.artifact("_resumo.json")

	out := make(map[string]summaryJSON, len(entries))
	for _, ent := range entries {
		files := ent.Files
		if files == nil {
			files = []string{}
		}
		out[ent.ErrorName] = summaryJSON{
			ErrorName:     ent.ErrorName,
			Count:         ent.Count,
			FirstSeen:     ent.FirstSeen,
			LastSeen:      ent.LastSeen,
			Files:         files,
			SampleMessage: ent.SampleMessage,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}
