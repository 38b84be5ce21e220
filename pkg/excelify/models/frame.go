package models

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the shape of an exportable value.
type Kind string

const (
	// KindTable is a two-dimensional labeled table.
	KindTable Kind = "table"
	// KindSeries is a one-dimensional labeled sequence.
	KindSeries Kind = "series"
)

// CellWriter is the part of a workbook a frame needs to serialize itself.
// *excelize.File satisfies it.
type CellWriter interface {
	SetSheetRow(sheet, cell string, slice interface{}) error
}

// Frame is a value that can be written to a single sheet.
// Table and Series are the supported implementations.
type Frame interface {
	// Kind reports the frame shape.
	Kind() Kind
	// Len returns the number of index labels.
	Len() int
	// WriteSheet serializes the frame into an existing sheet starting at A1.
	WriteSheet(w CellWriter, sheet string) error
}

// KindOf describes any value for diagnostics. Frames report their Kind,
// other values (and nil frame pointers) their Go type.
func KindOf(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("%T", v)
	}
	switch x := v.(type) {
	case nil:
		return "nil"
	case Frame:
		return string(x.Kind())
	default:
		return fmt.Sprintf("%T", v)
	}
}

// RangeIndex returns the positional labels "0".."n-1".
func RangeIndex(n int) []string {
	index := make([]string, n)
	for i := range index {
		index[i] = strconv.Itoa(i)
	}
	return index
}

func rowCell(row int) string {
	return "A" + strconv.Itoa(row)
}

// indexValue writes canonical integer labels ("0", "42", "-3") as numbers so
// positional indexes are not stored as text. Every other label, including
// "007", "1.50" and "NaN", stays a string and reads back unchanged.
func indexValue(label string) any {
	if i, err := strconv.ParseInt(label, 10, 64); err == nil && strconv.FormatInt(i, 10) == label {
		return i
	}
	return label
}
