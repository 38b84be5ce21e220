package session

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, fs afero.Fs, path string, build func(f *excelize.File)) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func TestLoadFrameCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data.csv", []byte("name,qty\nbolt,10\nnut,\n"), 0o644))

	frame, err := LoadFrame(fs, "data.csv", "", false)
	require.NoError(t, err)
	assert.Equal(t, models.NewTable([]string{"name", "qty"}, [][]any{{"bolt", int64(10)}, {"nut", nil}}), frame)

	frame, err = LoadFrame(fs, "data.csv", "", true)
	require.NoError(t, err)
	assert.Equal(t, &models.Series{Name: "name", Index: []string{"0", "1"}, Values: []any{"bolt", "nut"}}, frame)
}

func TestLoadFrameCSVKeepsNonFiniteText(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "odd.csv", []byte("v\nNaN\ninf\n-Infinity\n2.5\n"), 0o644))

	frame, err := LoadFrame(fs, "odd.csv", "", true)
	require.NoError(t, err)
	assert.Equal(t, []any{"NaN", "inf", "-Infinity", 2.5}, frame.(*models.Series).Values)
}

func TestLoadFrameEmptyCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "empty.csv", nil, 0o644))

	frame, err := LoadFrame(fs, "empty.csv", "", false)
	require.NoError(t, err)
	assert.Equal(t, 0, frame.Len())

	_, err = LoadFrame(fs, "empty.csv", "", true)
	assert.Error(t, err)
}

func TestLoadFrameXLSX(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeXLSX(t, fs, "book.xlsx", func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "ignored")
		_, _ = f.NewSheet("Prices")
		f.SetCellValue("Prices", "C3", "item")
		f.SetCellValue("Prices", "D3", "price")
		f.SetCellValue("Prices", "C4", "tea")
		f.SetCellValue("Prices", "D4", 3.25)
	})

	frame, err := LoadFrame(fs, "book.xlsx", "Prices", false)
	require.NoError(t, err)
	assert.Equal(t, models.NewTable([]string{"item", "price"}, [][]any{{"tea", 3.25}}), frame)

	frame, err = LoadFrame(fs, "book.xlsx", "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ignored"}, frame.(*models.Table).Columns)
	assert.Equal(t, 0, frame.Len())
}

func TestLoadFrameErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ragged.csv", []byte("a,b\n1\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte("hi"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "broken.xlsx", []byte("not a zip"), 0o644))

	tests := []struct {
		path  string
		sheet string
	}{
		{"missing.csv", ""},
		{"ragged.csv", ""},
		{"notes.txt", ""},
		{"broken.xlsx", ""},
		{"ragged.csv", "Sheet1"},
	}
	for _, tt := range tests {
		_, err := LoadFrame(fs, tt.path, tt.sheet, false)
		assert.Error(t, err, tt.path)
	}
}
