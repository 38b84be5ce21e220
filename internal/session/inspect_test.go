package session

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeInspectBook(t *testing.T, fs afero.Fs) {
	writeXLSX(t, fs, "book.xlsx", func(f *excelize.File) {
		_, _ = f.NewSheet("Prices")
		f.SetCellValue("Prices", "C3", "item")
		f.SetCellValue("Prices", "D3", "price")
		f.SetCellValue("Prices", "C4", "tea")
		f.SetCellValue("Prices", "D4", 3.25)
		f.SetCellValue("Prices", "C5", "02134")
		f.SetCellValue("Prices", "D5", 12)
	})
}

func TestInspect(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeInspectBook(t, fs)

	var out bytes.Buffer
	require.NoError(t, Inspect(fs, "book.xlsx", "", false, &out))
	assert.Contains(t, out.String(), "no table")
	assert.Contains(t, out.String(), "Prices  C3:D5\n")

	out.Reset()
	require.NoError(t, Inspect(fs, "book.xlsx", "Prices", true, &out))
	got := out.String()
	assert.Contains(t, got, "Prices")
	assert.NotContains(t, got, "Sheet1")
	assert.Contains(t, got, `"tea"`)
	assert.Contains(t, got, "3.25")
	assert.Contains(t, got, `"02134"`)
	assert.Contains(t, got, "  12\n")
}

func TestInspectErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeInspectBook(t, fs)

	var out bytes.Buffer
	assert.ErrorContains(t, Inspect(fs, "book.xlsx", "Missing", false, &out), `no sheet "Missing"`)
	assert.Error(t, Inspect(fs, "nope.xlsx", "", false, &out))
}

func TestExecuteInspect(t *testing.T) {
	ts := newTestSession(t)
	writeInspectBook(t, ts.fs)

	require.NoError(t, ts.Execute("inspect book.xlsx --sheet Prices --cells"))
	assert.Contains(t, ts.out.String(), "C3:D5")
	assert.Contains(t, ts.out.String(), `"item"`)
	assert.Error(t, ts.Execute("inspect"))
}
