// Package parser reads frames back out of xlsx workbooks.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every row of a sheet with typed cell values.
// Rows keep their position (blank rows are returned with no cells) so callers
// can rely on R matching the slice offset plus one.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	return typedRows(f, sheetName, rows, 0)
}

// rawRows returns stored cell values without number formats applied.
func rawRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// typedRows types rows returned by rawRows. first is the 0-based sheet row
// of rows[0].
func typedRows(f *excelize.File, sheetName string, rows [][]string, first int) ([]models.CellRow, error) {
	result := make([]models.CellRow, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]any, len(row))
		for colIdx, raw := range row {
			v, err := typedCell(f, sheetName, colIdx, first+rowIdx, raw)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = v
		}
		result = append(result, models.CellRow{
			R: first + rowIdx + 1,
			C: cells,
		})
	}
	return result, nil
}

// typedCell types a raw cell value by the cell's stored type, so text that
// looks numeric ("02134", "NaN") stays text. col and row are 0-based.
func typedCell(f *excelize.File, sheetName string, col, row int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return nil, err
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw), nil
	default:
		return raw, nil
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original
// string. NaN and infinities stay strings.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

// ParseValue types a literal typed in a session or read from CSV.
func ParseValue(s string) any {
	return parseValue(s)
}
