package criteria

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the evaluation criteria.
const SheetName = "Eval. & Obser. Criteria"

// LoadFromWorkbook reads the criteria worksheet and returns the merged
// section tree. A missing file or worksheet yields an empty tree alongside
// the error; callers surface it as a warning and render an empty form
// rather than failing.
func LoadFromWorkbook(path string) ([]*Section, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open criteria workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", SheetName, err)
	}

	grid := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, 0, maxColumns)
		for j, cell := range row {
			if j >= maxColumns {
				break
			}
			cells = append(cells, cell)
		}
		grid[i] = cells
	}

	return MergeContinuedSections(ExtractSections(grid)), nil
}
