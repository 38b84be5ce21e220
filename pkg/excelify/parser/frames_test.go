package parser

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/sink"
	"github.com/xuri/excelize/v2"
)

func writeAndOpen(t *testing.T, sheets map[string]models.Frame) *excelize.File {
	t.Helper()
	fs := afero.NewMemMapFs()
	wb, err := sink.Open(fs, "roundtrip.xlsx")
	require.NoError(t, err)
	for name, frame := range sheets {
		require.NoError(t, wb.WriteSheet(name, frame))
	}
	require.NoError(t, wb.Finalize())
	require.NoError(t, wb.Close())

	r, err := fs.Open("roundtrip.xlsx")
	require.NoError(t, err)
	defer r.Close()
	f, err := excelize.OpenReader(r)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadTableRoundTrip(t *testing.T) {
	original := &models.Table{
		Columns: []string{"city", "population", "area"},
		Index:   []string{"a", "b", "c"},
		Rows: [][]any{
			{"Osaka", int64(2750000), 225.21},
			{"Kyoto", int64(1460000), nil},
			{"Nara", nil, nil},
		},
	}
	f := writeAndOpen(t, map[string]models.Frame{"cities": original})

	got, err := ReadTable(f, "cities")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestReadTableEmpty(t *testing.T) {
	f := writeAndOpen(t, map[string]models.Frame{"df": &models.Table{}})

	got, err := ReadTable(f, "df")
	require.NoError(t, err)
	assert.Empty(t, got.Columns)
	assert.Empty(t, got.Index)
	assert.Empty(t, got.Rows)
}

func TestReadSeriesRoundTrip(t *testing.T) {
	original := models.NewSeries("values", []any{int64(1), "two", 3.5, nil})
	f := writeAndOpen(t, map[string]models.Frame{"s": original})

	got, err := ReadSeries(f, "s")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestReadSeriesEmpty(t *testing.T) {
	f := writeAndOpen(t, map[string]models.Frame{"series": models.NewSeries("", nil)})

	got, err := ReadSeries(f, "series")
	require.NoError(t, err)
	assert.Equal(t, "0", got.Name)
	assert.Empty(t, got.Index)
	assert.Empty(t, got.Values)
}

func TestReadSeriesRejectsTableSheet(t *testing.T) {
	f := writeAndOpen(t, map[string]models.Frame{
		"df": models.NewTable([]string{"a", "b"}, [][]any{{int64(1), int64(2)}}),
	})

	_, err := ReadSeries(f, "df")
	assert.Error(t, err)
}

func TestReadMissingSheet(t *testing.T) {
	f := writeAndOpen(t, map[string]models.Frame{"s": models.NewSeries("s", nil)})

	_, err := ReadTable(f, "nope")
	assert.Error(t, err)
}

func TestReadSeriesKeepsNumericLookingText(t *testing.T) {
	original := &models.Series{
		Name:   "codes",
		Index:  []string{"007", "1.50", "Nan", "inf", "-3", "x"},
		Values: []any{"02134", "Nan", "12", int64(12), 0.25, true},
	}
	f := writeAndOpen(t, map[string]models.Frame{"codes": original})

	got, err := ReadSeries(f, "codes")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestReadTableKeepsStringLabels(t *testing.T) {
	original := &models.Table{
		Columns: []string{"zip", "count"},
		Index:   []string{"007", "1.50", "10"},
		Rows: [][]any{
			{"02134", int64(3)},
			{"NaN", 1.5},
			{"-0", int64(-7)},
		},
	}
	f := writeAndOpen(t, map[string]models.Frame{"zips": original})

	got, err := ReadTable(f, "zips")
	require.NoError(t, err)
	assert.Equal(t, original, got)
}
