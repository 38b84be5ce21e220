// Package sink writes frames into a single xlsx workbook.
package sink

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in every new workbook.
const defaultSheet = "Sheet1"

var (
	// ErrClosed is returned when a closed workbook is used.
	ErrClosed = errors.New("workbook is closed")
	// ErrDuplicateSheet is returned when a sheet name was already written,
	// compared without regard to letter case.
	ErrDuplicateSheet = errors.New("sheet already written")
)

// Workbook is an open workbook waiting to be finalized at Path.
type Workbook struct {
	fs      afero.Fs
	path    string
	file    *excelize.File
	written []string
}

// Open starts a new workbook that Finalize will write to path on fs.
// Nothing touches the filesystem until Finalize.
func Open(fs afero.Fs, path string) (*Workbook, error) {
	if path == "" {
		return nil, errors.New("workbook path is empty")
	}
	return &Workbook{
		fs:   fs,
		path: path,
		file: excelize.NewFile(),
	}, nil
}

// Path returns the target file path.
func (w *Workbook) Path() string {
	return w.path
}

// Sheets returns the names written so far, in order.
func (w *Workbook) Sheets() []string {
	return append([]string(nil), w.written...)
}

// WriteSheet creates the named sheet and serializes frame into it. Each name
// can be written once per workbook.
func (w *Workbook) WriteSheet(name string, frame models.Frame) error {
	if w.file == nil {
		return ErrClosed
	}
	if w.hasWritten(name) {
		return fmt.Errorf("sheet %q: %w", name, ErrDuplicateSheet)
	}
	if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.written = append(w.written, name)
	if err := frame.WriteSheet(w.file, name); err != nil {
		return fmt.Errorf("write %s to sheet %q: %w", frame.Kind(), name, err)
	}
	return nil
}

// Finalize drops the placeholder sheet, activates the first written sheet and
// writes the workbook file, creating missing parent directories.
func (w *Workbook) Finalize() error {
	if w.file == nil {
		return ErrClosed
	}
	if len(w.written) > 0 {
		if !w.hasWritten(defaultSheet) {
			if err := w.file.DeleteSheet(defaultSheet); err != nil {
				return fmt.Errorf("remove default sheet: %w", err)
			}
		}
		idx, err := w.file.GetSheetIndex(w.written[0])
		if err != nil {
			return err
		}
		w.file.SetActiveSheet(idx)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	out, err := w.fs.Create(w.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}
	if _, err := w.file.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}

// Close releases the workbook. It is safe to call more than once.
func (w *Workbook) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// hasWritten compares case-insensitively, as excelize and Excel resolve sheet names.
func (w *Workbook) hasWritten(name string) bool {
	for _, n := range w.written {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
