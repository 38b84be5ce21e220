// Package config loads the interactive session configuration.
//
// The file is TOML, read from ~/.excelify/config.toml unless another path is
// given. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

const (
	dirName  = ".excelify"
	fileName = "config.toml"
)

// Config is the session configuration.
type Config struct {
	// Prompt is shown before every input line.
	Prompt string `toml:"prompt"`
	// HistoryFile stores REPL input history; empty disables history.
	HistoryFile string `toml:"history_file"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
	// OutputDir receives workbooks written to relative paths.
	OutputDir string `toml:"output_dir"`
	// Load lists objects loaded into the namespace at startup.
	Load []LoadEntry `toml:"load"`
}

// LoadEntry binds the contents of a CSV or XLSX file to a name.
type LoadEntry struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
	// Sheet selects the worksheet of an xlsx file; empty means the first.
	Sheet string `toml:"sheet"`
	// Series loads the first column as a series instead of a table.
	Series bool `toml:"series"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Prompt:   "excelify> ",
		LogLevel: "error",
	}
	if dir, err := Dir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, "history")
	}
	return cfg
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Load))
	for i, l := range c.Load {
		if l.Name == "" {
			return fmt.Errorf("load[%d]: name is required", i)
		}
		if l.Path == "" {
			return fmt.Errorf("load[%d] (%s): path is required", i, l.Name)
		}
		if seen[l.Name] {
			return fmt.Errorf("load[%d]: duplicate name %q", i, l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
