package session

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/ukaji3/excelify-go/pkg/excelify/parser"
)

// Inspect prints the detected table range of each sheet in an xlsx file, or
// of the named sheet only. With cells every non-blank row is dumped with its
// typed values.
func Inspect(fs afero.Fs, path, sheet string, cells bool, out io.Writer) error {
	f, err := openWorkbook(fs, path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet != "" {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			return fmt.Errorf("%s has no sheet %q", path, sheet)
		}
		sheets = []string{sheet}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range sheets {
		ranges, err := parser.DetectTables(f, name, parser.DefaultTableParams())
		if err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		if len(ranges) == 0 {
			fmt.Fprintf(tw, "%s\t%s\n", name, dimStyle.Render("no table"))
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(ranges, ", "))
		}
		if !cells {
			continue
		}

		rows, err := parser.ExtractCells(f, name)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		for _, row := range rows {
			if len(row.C) == 0 {
				continue
			}
			values := make([]string, len(row.C))
			for i, v := range row.C {
				values[i] = formatCell(v)
			}
			fmt.Fprintf(tw, "  %d\t%s\n", row.R, strings.Join(values, "\t"))
		}
	}
	return tw.Flush()
}

// formatCell renders a typed cell, quoting text so "12" and 12 differ.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(x)
	}
}
