package parser

import (
	"fmt"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet written by a Table: a header row with a blank index
// header, then one row per index label. Values keep the type their cells were
// stored with.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	table := &models.Table{
		Columns: []string{},
		Index:   []string{},
		Rows:    [][]any{},
	}
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	if len(header) > 1 {
		table.Columns = append(table.Columns, header[1:]...)
	}
	for i, row := range rows[1:] {
		label, values, err := splitIndex(f, sheetName, i+1, row, len(table.Columns))
		if err != nil {
			return nil, err
		}
		table.Index = append(table.Index, label)
		table.Rows = append(table.Rows, values)
	}
	return table, nil
}

// ReadSeries reads a sheet written by a Series: a header row holding the
// series name, then (label, value) rows.
func ReadSeries(f *excelize.File, sheetName string) (*models.Series, error) {
	rows, err := rawRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	series := &models.Series{
		Index:  []string{},
		Values: []any{},
	}
	if len(rows) == 0 {
		return series, nil
	}

	header := rows[0]
	if len(header) > 2 {
		return nil, fmt.Errorf("sheet %q has %d header columns, a series has one", sheetName, len(header)-1)
	}
	if len(header) == 2 {
		series.Name = header[1]
	}
	for i, row := range rows[1:] {
		label, values, err := splitIndex(f, sheetName, i+1, row, 1)
		if err != nil {
			return nil, err
		}
		series.Index = append(series.Index, label)
		series.Values = append(series.Values, values[0])
	}
	return series, nil
}

// splitIndex separates the index label from width typed values, padding rows
// that excelize returned without their trailing empty cells. rowIdx is the
// 0-based sheet row.
func splitIndex(f *excelize.File, sheetName string, rowIdx int, row []string, width int) (string, []any, error) {
	var label string
	if len(row) > 0 {
		label = row[0]
	}
	values := make([]any, width)
	for i := 0; i < width && i+1 < len(row); i++ {
		v, err := typedCell(f, sheetName, i+1, rowIdx, row[i+1])
		if err != nil {
			return "", nil, err
		}
		values[i] = v
	}
	return label, values, nil
}
