package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/logsift/logsift/internal/model"
)

// WriteMarkdown writes the human-readable summary report. The table lists
// only file base names for readability; missing values render as "-".
func (e *Emitter) WriteMarkdown(entries []*model.SummaryEntry) (string, error) {
	path := e.artifact("_RELATORIO_SUMARIO.md")

	if err := os.WriteFile(path, []byte(renderMarkdown(entries)), 0644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// renderMarkdown builds the Markdown document as self-contained UTF-8 text.
func renderMarkdown(entries []*model.SummaryEntry) string {
	total := 0
	for _, ent := range entries {
		total += ent.Count
	}

	var lines []string
	lines = append(lines, "# Sumário de Erros Detectados\n")
	lines = append(lines, fmt.Sprintf("- Total de categorias de erro: **%d**", len(entries)))
	lines = append(lines, fmt.Sprintf("- Total de ocorrências: **%d**\n", total))

	if len(entries) == 0 {
		lines = append(lines, "> Nenhum erro mapeado.\n")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "| Erro | Ocorrências | Primeiro visto | Último visto | Arquivos afetados |")
	lines = append(lines, "|---|---:|---|---|---|")
	for _, ent := range entries {
		names := make([]string, 0, len(ent.Files))
		for _, f := range ent.Files {
			names = append(names, filepath.Base(f))
		}
		lines = append(lines, fmt.Sprintf("| %s | %d | %s | %s | %s |",
			ent.ErrorName,
			ent.Count,
			orDash(ent.FirstSeen),
			orDash(ent.LastSeen),
			orDash(strings.Join(names, ", ")),
		))
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
