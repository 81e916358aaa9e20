// Package tabular turns raw spreadsheet bytes and JSON exports into the row
// shapes the catalog normalizer consumes. Only the first sheet of a
// workbook is read, matching how commission files are distributed.
package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Kreemchek/unitka20/internal/catalog"
)

// ParseWorkbook reads the first sheet of an xlsx workbook into positional
// rows. Empty trailing cells come back as empty strings, not truncated
// rows, so column indices stay stable.
func ParseWorkbook(data []byte) ([]catalog.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	rows := make([]catalog.Row, 0, len(cells))
	for _, line := range cells {
		// GetRows trims trailing empty cells per row; pad so the
		// positional mapping (B=1, C=2, D=3, E=4) always resolves.
		padded := make([]string, 5)
		copy(padded, line)
		if len(line) > 5 {
			padded = line
		}
		rows = append(rows, catalog.Row{Cells: padded})
	}
	return rows, nil
}
