package excelify

import (
	"errors"
	"fmt"
	"strings"
)

// MaxObjects is the largest number of objects a bulk export writes.
const MaxObjects = 100

// ErrEmptyNamespace indicates a bulk export found no tables or series.
var ErrEmptyNamespace = errors.New("no tables or series in namespace")

// ErrTooManyObjects indicates a bulk export found more than MaxObjects objects.
var ErrTooManyObjects = errors.New("too many tables or series in namespace")

// UndefinedNameError is returned when the requested name is not bound.
type UndefinedNameError struct {
	Name string
}

func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("name %q is not defined", e.Name)
}

// UnsupportedTypeError is returned when the requested value is neither a
// table nor a series.
type UnsupportedTypeError struct {
	Name string
	// Kind is the observed kind of the value (its Go type for non-frames).
	Kind string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("object %q must be a table or series, got %s", e.Name, e.Kind)
}

// TooManyObjectsError carries the number of eligible objects found.
type TooManyObjectsError struct {
	Count int
}

func (e *TooManyObjectsError) Error() string {
	return fmt.Sprintf("%v: found %d, limit is %d", ErrTooManyObjects, e.Count, MaxObjects)
}

func (e *TooManyObjectsError) Unwrap() error {
	return ErrTooManyObjects
}

// InvalidSheetNameError is returned before writing when a sheet name would be
// rejected by the workbook.
type InvalidSheetNameError struct {
	SheetName string
	Err       error
}

func (e *InvalidSheetNameError) Error() string {
	return fmt.Sprintf("invalid sheet name %q: %v", e.SheetName, e.Err)
}

func (e *InvalidSheetNameError) Unwrap() error {
	return e.Err
}

// DuplicateSheetNameError is returned when objects map to sheet names that
// differ only in letter case (or not at all), which a workbook cannot hold.
type DuplicateSheetNameError struct {
	SheetName string
	Objects   []string
}

func (e *DuplicateSheetNameError) Error() string {
	return fmt.Sprintf("objects %s map to the same sheet name %q (sheet names ignore case)",
		strings.Join(e.Objects, ", "), e.SheetName)
}

// SinkError represents a failure while writing the workbook.
type SinkError struct {
	Path      string
	SheetName string // empty when the failure is not tied to one sheet
	Err       error
}

func (e *SinkError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("write workbook %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("write workbook %s (sheet %q): %v", e.Path, e.SheetName, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// NewSinkError creates a new SinkError.
func NewSinkError(path, sheetName string, err error) *SinkError {
	return &SinkError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}

// NameTruncationWarning reports sheet names cut to MaxSheetNameLen.
// Single exports fill Original and Truncated; bulk exports only Count.
type NameTruncationWarning struct {
	Original  string
	Truncated string
	Count     int
}

func (w NameTruncationWarning) String() string {
	if w.Original == "" {
		return fmt.Sprintf("%d sheet names exceed %d characters and were truncated", w.Count, MaxSheetNameLen)
	}
	return fmt.Sprintf("sheet name %q exceeds %d characters, truncated to %q", w.Original, MaxSheetNameLen, w.Truncated)
}
