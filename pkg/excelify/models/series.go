package models

import "fmt"

// unnamedHeader is the header written for a series without a name.
const unnamedHeader = "0"

// Series is a one-dimensional labeled sequence.
type Series struct {
	Name   string
	Index  []string
	Values []any
}

// NewSeries builds a series with a positional index.
func NewSeries(name string, values []any) *Series {
	return &Series{
		Name:   name,
		Index:  RangeIndex(len(values)),
		Values: values,
	}
}

// Kind implements Frame.
func (s Series) Kind() Kind { return KindSeries }

// Len implements Frame.
func (s Series) Len() int { return len(s.Index) }

// Validate checks that every index label has a value.
func (s Series) Validate() error {
	if len(s.Index) != len(s.Values) {
		return fmt.Errorf("series has %d index labels but %d values", len(s.Index), len(s.Values))
	}
	return nil
}

// WriteSheet writes a header row (blank index header, then the series name)
// followed by one (label, value) row per element.
func (s Series) WriteSheet(w CellWriter, sheet string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	name := s.Name
	if name == "" {
		name = unnamedHeader
	}
	header := []any{"", name}
	if err := w.SetSheetRow(sheet, rowCell(1), &header); err != nil {
		return err
	}

	for i, label := range s.Index {
		row := []any{indexValue(label), s.Values[i]}
		if err := w.SetSheetRow(sheet, rowCell(i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
