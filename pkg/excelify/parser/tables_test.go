package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", ""},
		{"", "x", "", "y"},
		{"", "", "z"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	assert.Equal(t, []int{2, 3, 1, 3}, []int{minRow, maxRow, minCol, maxCol})

	minRow, _, _, _ = findDataBounds([][]string{{"", ""}})
	assert.Equal(t, -1, minRow)
}

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		params   TableDetectionParams
		expected string
		ok       bool
	}{
		{"empty sheet", nil, DefaultTableParams(), "", false},
		{"single cell", [][]string{{"a"}}, DefaultTableParams(), "A1:A1", true},
		{"offset block", [][]string{{}, {"", "h1", "h2"}, {"", "1", "2"}}, DefaultTableParams(), "B2:C3", true},
		{"too few cells", [][]string{{"a", "b"}}, TableDetectionParams{MinNonemptyCells: 3}, "", false},
		{"too sparse", [][]string{{"a"}, {}, {}, {"", "", "", "b"}}, TableDetectionParams{DensityMin: 0.5}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := detectRegion(tt.rows, tt.params)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, r.String())
			}
		})
	}
}

func TestImportTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B2", "name")
	f.SetCellValue("Sheet1", "C2", "qty")
	f.SetCellValue("Sheet1", "B3", "apple")
	f.SetCellValue("Sheet1", "C3", 3)
	f.SetCellValue("Sheet1", "B4", "pear")

	ranges, err := DetectTables(f, "Sheet1", DefaultTableParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"B2:C4"}, ranges)

	table, err := ImportTable(f, "Sheet1", DefaultTableParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "qty"}, table.Columns)
	assert.Equal(t, []string{"0", "1"}, table.Index)
	assert.Equal(t, [][]any{{"apple", int64(3)}, {"pear", nil}}, table.Rows)
}

func TestImportTableUnnamedColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "B2", "x")

	table, err := ImportTable(f, "Sheet1", DefaultTableParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Unnamed: 1"}, table.Columns)
	assert.Equal(t, [][]any{{nil, "x"}}, table.Rows)
}

func TestImportTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ImportTable(f, "Sheet1", DefaultTableParams())
	assert.True(t, errors.Is(err, ErrNoTable))
}
