package models

import "fmt"

// Table is a two-dimensional labeled data structure: rows keyed by Index,
// values under named Columns.
type Table struct {
	Columns []string
	Index   []string
	Rows    [][]any
}

// NewTable builds a table with a positional index.
func NewTable(columns []string, rows [][]any) *Table {
	return &Table{
		Columns: columns,
		Index:   RangeIndex(len(rows)),
		Rows:    rows,
	}
}

// Kind implements Frame.
func (t Table) Kind() Kind { return KindTable }

// Len implements Frame.
func (t Table) Len() int { return len(t.Index) }

// Validate checks that the index and every row match the table shape.
func (t Table) Validate() error {
	if len(t.Rows) != len(t.Index) {
		return fmt.Errorf("table has %d index labels but %d rows", len(t.Index), len(t.Rows))
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table row %d has %d values, expected %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}

// WriteSheet writes a header row (blank index header, then column names)
// followed by one row per index label.
func (t Table) WriteSheet(w CellWriter, sheet string) error {
	if err := t.Validate(); err != nil {
		return err
	}

	header := make([]any, 0, len(t.Columns)+1)
	header = append(header, "")
	for _, c := range t.Columns {
		header = append(header, c)
	}
	if err := w.SetSheetRow(sheet, rowCell(1), &header); err != nil {
		return err
	}

	for i, label := range t.Index {
		row := make([]any, 0, len(t.Columns)+1)
		row = append(row, indexValue(label))
		row = append(row, t.Rows[i]...)
		if err := w.SetSheetRow(sheet, rowCell(i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

// Column extracts the column at position i as a Series sharing the table index.
func (t Table) Column(i int) (*Series, error) {
	if i < 0 || i >= len(t.Columns) {
		return nil, fmt.Errorf("column %d out of range (table has %d columns)", i, len(t.Columns))
	}
	values := make([]any, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			values[r] = row[i]
		}
	}
	return &Series{
		Name:   t.Columns[i],
		Index:  append([]string(nil), t.Index...),
		Values: values,
	}, nil
}
