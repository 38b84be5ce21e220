package excelify

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/sink"
	"go.uber.org/zap"
)

// allDataBasis is the default file name basis of bulk exports.
const allDataBasis = "all_data"

// Request holds the arguments of one export command.
type Request struct {
	// ObjectName is the namespace name to export (single export only).
	ObjectName string
	// Filepath is the workbook path; empty selects a timestamped default.
	Filepath string
	// SheetName is the requested sheet name (single export only).
	SheetName string
	// NoSort is accepted for bulk exports but sheets are always sorted.
	NoSort bool
}

// Result describes a completed export.
type Result struct {
	// ObjectName is set for single exports.
	ObjectName string
	Path       string
	// SheetName is set for single exports.
	SheetName string
	Count     int
	Export    models.ResolvedExport
	Warnings  []NameTruncationWarning
}

// Message renders the confirmation line shown to the user.
func (r *Result) Message() string {
	if r.ObjectName != "" {
		return fmt.Sprintf("%s saved to %s on sheet %s", r.ObjectName, r.Path, r.SheetName)
	}
	return fmt.Sprintf("%d saved to %s", r.Count, r.Path)
}

// Exporter runs single and bulk exports.
type Exporter struct {
	opts Options
}

// New returns an Exporter. Unset options take their defaults.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts.withDefaults()}
}

// ExportOne writes the object named by req.ObjectName to its own workbook.
func (e *Exporter) ExportOne(req Request, ns Namespace) (*Result, error) {
	value, err := Resolve(req.ObjectName, ns)
	if err != nil {
		return nil, err
	}
	frame, err := Check(req.ObjectName, value)
	if err != nil {
		return nil, err
	}

	now := e.opts.Clock.Now()
	path := e.place(TargetPath(req.Filepath, req.ObjectName, now))
	sheet := DeriveSheetName(req.SheetName, req.ObjectName, now)

	result := &Result{
		ObjectName: req.ObjectName,
		Path:       path,
		SheetName:  sheet.Name,
		Count:      1,
		Export: models.ResolvedExport{
			TargetPath: path,
			Sheets: []models.SheetAssignment{
				{SheetName: sheet.Name, ObjectName: req.ObjectName, Frame: frame},
			},
		},
	}

	if sheet.Truncated {
		original := req.SheetName
		if original == "" {
			original = req.ObjectName
		}
		w := NameTruncationWarning{Original: original, Truncated: sheet.Name, Count: 1}
		e.opts.Logger.Warn("sheet name truncated",
			zap.String("original", original),
			zap.String("truncated", sheet.Name),
			zap.Int("original_len", sheet.OriginalLen),
		)
		result.Warnings = append(result.Warnings, w)
	}

	if err := e.write(result.Export); err != nil {
		return nil, err
	}

	e.opts.Logger.Info("exported object",
		zap.String("object", req.ObjectName),
		zap.String("path", path),
		zap.String("sheet", sheet.Name),
		zap.String("kind", string(frame.Kind())),
	)
	return result, nil
}

// ExportAll writes every table and series in ns to one workbook, one sheet
// per object, sheets ordered by name. Other values are skipped.
func (e *Exporter) ExportAll(req Request, ns Namespace) (*Result, error) {
	var sheets []models.SheetAssignment
	for _, entry := range ns.Items() {
		frame, err := Check(entry.Name, entry.Value)
		if err != nil {
			continue
		}
		sheets = append(sheets, models.SheetAssignment{ObjectName: entry.Name, Frame: frame})
	}

	if len(sheets) == 0 {
		return nil, ErrEmptyNamespace
	}
	if len(sheets) > MaxObjects {
		return nil, &TooManyObjectsError{Count: len(sheets)}
	}

	truncated := 0
	for i := range sheets {
		name, cut := truncateName(sheets[i].ObjectName, MaxSheetNameLen)
		if cut {
			truncated++
		}
		sheets[i].SheetName = name
	}

	if req.NoSort {
		e.opts.Logger.Debug("nosort is not supported, sheets are sorted by name")
	}
	sort.SliceStable(sheets, func(i, j int) bool {
		return sheets[i].SheetName < sheets[j].SheetName
	})

	now := e.opts.Clock.Now()
	path := e.place(TargetPath(req.Filepath, allDataBasis, now))
	result := &Result{
		Path:   path,
		Count:  len(sheets),
		Export: models.ResolvedExport{TargetPath: path, Sheets: sheets},
	}

	if truncated > 0 {
		e.opts.Logger.Warn("sheet names truncated", zap.Int("count", truncated))
		result.Warnings = append(result.Warnings, NameTruncationWarning{Count: truncated})
	}

	if err := e.write(result.Export); err != nil {
		return nil, err
	}

	e.opts.Logger.Info("exported namespace",
		zap.Int("count", len(sheets)),
		zap.String("path", path),
	)
	return result, nil
}

// place resolves relative paths against Options.Dir.
func (e *Exporter) place(path string) string {
	if e.opts.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.opts.Dir, path)
}

// checkPlan validates every sheet name and rejects names that collide once
// letter case is ignored. It runs before the sink is opened.
func checkPlan(plan models.ResolvedExport) error {
	seen := make(map[string]int, len(plan.Sheets))
	for i, s := range plan.Sheets {
		if err := ValidateSheetName(s.SheetName); err != nil {
			return err
		}
		key := strings.ToLower(s.SheetName)
		if j, ok := seen[key]; ok {
			return &DuplicateSheetNameError{
				SheetName: s.SheetName,
				Objects:   []string{plan.Sheets[j].ObjectName, s.ObjectName},
			}
		}
		seen[key] = i
	}
	return nil
}

// write checks the plan, then opens the sink once, writes every sheet in
// order and always finalizes and closes it, even after a failed sheet write.
func (e *Exporter) write(plan models.ResolvedExport) (err error) {
	if err := checkPlan(plan); err != nil {
		return err
	}

	wb, err := sink.Open(e.opts.Fs, plan.TargetPath)
	if err != nil {
		return NewSinkError(plan.TargetPath, "", err)
	}
	defer func() {
		if closeErr := wb.Close(); closeErr != nil && err == nil {
			err = NewSinkError(plan.TargetPath, "", closeErr)
		}
	}()

	var writeErr error
	for _, s := range plan.Sheets {
		if err := wb.WriteSheet(s.SheetName, s.Frame); err != nil {
			writeErr = NewSinkError(plan.TargetPath, s.SheetName, err)
			break
		}
	}

	if err := wb.Finalize(); err != nil {
		return errors.Join(writeErr, NewSinkError(plan.TargetPath, "", err))
	}
	return writeErr
}
