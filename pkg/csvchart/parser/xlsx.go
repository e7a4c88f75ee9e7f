package parser

import (
	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a table from a workbook sheet. An empty sheetName selects
// the first sheet. The table is the bounding box of non-empty cells and its
// first row is the header.
func ReadSheet(f *excelize.File, sheetName string) (*models.TabularData, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, ErrNoHeader
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, ErrNoHeader
	}

	region := cropRows(rows, minRow, maxRow, minCol, maxCol)
	return models.NewTabularData(NormalizeHeader(region[0]), region[1:]), nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// cropRows copies the cells within bounds, padding short rows and
// dropping rows with no data.
func cropRows(rows [][]string, minRow, maxRow, minCol, maxCol int) [][]string {
	width := maxCol - minCol + 1
	out := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, width)
		hasData := false
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cells[colIdx-minCol] = row[colIdx]
			if row[colIdx] != "" {
				hasData = true
			}
		}
		if hasData {
			out = append(out, cells)
		}
	}
	return out
}
