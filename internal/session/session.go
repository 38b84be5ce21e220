// Package session implements the interactive session that owns the namespace
// and runs the export commands against it.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/afero"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"github.com/ukaji3/excelify-go/pkg/excelify/namespace"
	"go.uber.org/zap"
)

// ErrQuit is returned by Execute when the user asks to leave the session.
var ErrQuit = errors.New("quit")

// Options configures a Session.
type Options struct {
	// Export configures the exporter. Its Fs is also used by loaders.
	Export excelify.Options
	// Out receives command output; defaults to os.Stdout.
	Out io.Writer
	// Err receives warnings and errors; defaults to os.Stderr.
	Err io.Writer
}

// Session is one interactive session with its own namespace.
type Session struct {
	ns       *namespace.Map
	exporter *excelify.Exporter
	fs       afero.Fs
	logger   *zap.Logger
	out      io.Writer
	errOut   io.Writer
}

// New creates a session with an empty namespace.
func New(opts Options) *Session {
	if opts.Export.Fs == nil {
		opts.Export.Fs = afero.NewOsFs()
	}
	if opts.Export.Logger == nil {
		opts.Export.Logger = zap.NewNop()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	return &Session{
		ns:       namespace.New(),
		exporter: excelify.New(opts.Export),
		fs:       opts.Export.Fs,
		logger:   opts.Export.Logger,
		out:      opts.Out,
		errOut:   opts.Err,
	}
}

// Namespace returns the session variables.
func (s *Session) Namespace() *namespace.Map {
	return s.ns
}

// Execute runs one input line. Blank lines are ignored; "quit" and "exit"
// return ErrQuit.
func (s *Session) Execute(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return ErrQuit
	}

	s.logger.Debug("execute", zap.Strings("args", args))
	root := s.newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

// ReportError prints err the way the REPL does.
func (s *Session) ReportError(err error) {
	fmt.Fprintln(s.errOut, errorStyle.Render("[error]")+" "+err.Error())
}

func (s *Session) printResult(r *excelify.Result) {
	for _, w := range r.Warnings {
		fmt.Fprintln(s.errOut, warningStyle.Render("[warning]")+" "+w.String())
	}
	fmt.Fprintln(s.out, successStyle.Render(r.Message()))
}

// Load reads a file into the namespace under name.
func (s *Session) Load(name, path, sheet string, asSeries bool) (int, error) {
	frame, err := LoadFrame(s.fs, path, sheet, asSeries)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", name, err)
	}
	s.ns.Set(name, frame)
	s.logger.Debug("loaded",
		zap.String("name", name),
		zap.String("path", path),
		zap.String("kind", string(frame.Kind())),
		zap.Int("rows", frame.Len()),
	)
	return frame.Len(), nil
}
