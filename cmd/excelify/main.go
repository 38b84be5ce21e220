// Package main provides the CLI entry point for excelify-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ukaji3/excelify-go/internal/config"
	"github.com/ukaji3/excelify-go/internal/session"
	"github.com/ukaji3/excelify-go/pkg/excelify"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	logLevel   string
	loads      []string
	commands   []string
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelify",
		Short: "Export tables and series to Excel from an interactive session",
		Long: `excelify starts an interactive session holding named tables and series.
Load data with "load", then save it with "export <name>" or "export_all".`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	defaultConfig, _ := config.DefaultPath()
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfig, "Path to the TOML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.Flags().StringArrayVar(&loads, "load", nil, "Load a file at startup as name=path (repeatable)")
	rootCmd.Flags().StringArrayVarP(&commands, "command", "c", nil, "Run a session command and exit (repeatable)")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	sess := session.New(session.Options{
		Export: excelify.Options{
			Clock:  clockwork.NewRealClock(),
			Logger: logger,
			Fs:     afero.NewOsFs(),
			Dir:    cfg.OutputDir,
		},
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})

	// Startup loads: config entries first, flags override by name
	for _, l := range cfg.Load {
		if _, err := sess.Load(l.Name, l.Path, l.Sheet, l.Series); err != nil {
			return err
		}
	}
	for _, arg := range loads {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("invalid --load %q (want name=path)", arg)
		}
		if _, err := sess.Load(name, path, "", false); err != nil {
			return err
		}
	}

	if len(commands) > 0 {
		for _, line := range commands {
			if err := sess.Execute(line); err != nil {
				if errors.Is(err, session.ErrQuit) {
					return nil
				}
				return err
			}
		}
		return nil
	}

	return sess.Run(cfg.Prompt, cfg.HistoryFile)
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
