package session

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/parser"
	"github.com/xuri/excelize/v2"
)

// LoadFrame reads a .csv or .xlsx file as a table. For xlsx files sheet picks
// the worksheet (first one when empty). With asSeries the first column is
// returned as a series.
func LoadFrame(fs afero.Fs, path, sheet string, asSeries bool) (models.Frame, error) {
	var (
		table *models.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		if sheet != "" {
			return nil, errors.New("--sheet applies to xlsx files only")
		}
		table, err = loadCSV(fs, path)
	case ".xlsx", ".xlsm":
		table, err = loadXLSX(fs, path, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if asSeries {
		series, err := table.Column(0)
		if err != nil {
			return nil, err
		}
		return series, nil
	}
	return table, nil
}

func loadCSV(fs afero.Fs, path string) (*models.Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return models.NewTable([]string{}, [][]any{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rows := [][]any{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row := make([]any, len(record))
		for i, v := range record {
			if v != "" {
				row[i] = parser.ParseValue(v)
			}
		}
		rows = append(rows, row)
	}
	return models.NewTable(header, rows), nil
}

// openWorkbook reads an xlsx file from fs. Callers close the returned file.
func openWorkbook(fs afero.Fs, path string) (*excelize.File, error) {
	r, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func loadXLSX(fs afero.Fs, path, sheet string) (*models.Table, error) {
	f, err := openWorkbook(fs, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	return parser.ImportTable(f, sheet, parser.DefaultTableParams())
}
