// Package excelify exports named tables and series from a namespace into xlsx
// workbooks, one object per sheet.
package excelify

import (
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures export behavior.
type Options struct {
	// Clock supplies the time used for default file and sheet names.
	Clock clockwork.Clock
	// Logger receives truncation warnings and export summaries.
	Logger *zap.Logger
	// Fs is the filesystem workbooks are written to.
	Fs afero.Fs
	// Dir, when set, is prepended to relative workbook paths.
	Dir string
}

// DefaultOptions returns options backed by the wall clock, the OS filesystem
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Clock:  clockwork.NewRealClock(),
		Logger: zap.NewNop(),
		Fs:     afero.NewOsFs(),
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	if o.Fs == nil {
		o.Fs = d.Fs
	}
	return o
}
