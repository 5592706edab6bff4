package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/logsift/logsift/internal/model"
)

// WriteXLSX writes the summary table as a spreadsheet, mirroring the
// summary CSV columns and row order.
func (e *Emitter) WriteXLSX(entries []*model.SummaryEntry) (string, error) {
	path := e.artifact("_resumo.xlsx")
	const sheet = "Resumo"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("report: xlsx sheet: %w", err)
	}

	header := []interface{}{"error_name", "count", "first_seen", "last_seen", "files", "sample_message"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("report: xlsx header: %w", err)
	}

	for i, ent := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{
			ent.ErrorName,
			ent.Count,
			ent.FirstSeen,
			ent.LastSeen,
			strings.Join(ent.Files, ";"),
			ent.SampleMessage,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("report: xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}
