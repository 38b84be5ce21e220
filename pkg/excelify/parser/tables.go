package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoTable is returned by ImportTable when a sheet holds no table-like region.
var ErrNoTable = errors.New("no table found")

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 1,
	}
}

// region is a 0-based inclusive bounding box.
type region struct {
	minRow, maxRow, minCol, maxCol int
}

// String renders the region in A1 range notation.
func (r region) String() string {
	startCell, _ := excelize.CoordinatesToCellName(r.minCol+1, r.minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.maxCol+1, r.maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DetectTables detects table-like regions in a sheet.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	r, ok := detectRegion(rows, params)
	if !ok {
		return nil, nil
	}
	return []string{r.String()}, nil
}

// ImportTable reads the detected data region of an arbitrary sheet as a table.
// The first row of the region is the header; the index is positional.
func ImportTable(f *excelize.File, sheetName string, params TableDetectionParams) (*models.Table, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	r, ok := detectRegion(rows, params)
	if !ok {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrNoTable)
	}

	width := r.maxCol - r.minCol + 1
	header := rows[r.minRow]
	columns := make([]string, width)
	for i := range columns {
		col := r.minCol + i
		if col < len(header) && header[col] != "" {
			columns[i] = header[col]
		} else {
			columns[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	typed, err := typedRows(f, sheetName, rows[r.minRow+1:r.maxRow+1], r.minRow+1)
	if err != nil {
		return nil, err
	}
	data := make([][]any, 0, len(typed))
	for _, cr := range typed {
		values := make([]any, width)
		for i := range values {
			values[i] = cr.Cell(r.minCol + i)
		}
		data = append(data, values)
	}
	return models.NewTable(columns, data), nil
}

// detectRegion finds the bounding box of non-empty cells and accepts it when
// it is dense enough.
func detectRegion(rows [][]string, params TableDetectionParams) (region, bool) {
	if len(rows) == 0 {
		return region{}, false
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return region{}, false
	}

	// Calculate density
	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return region{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return region{}, false
	}

	return region{minRow: minRow, maxRow: maxRow, minCol: minCol, maxCol: maxCol}, true
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

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
