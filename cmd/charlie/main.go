// Package main is the entry point for the Charlie editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/charlie/internal/app"
	"github.com/dshills/charlie/internal/config"
	"github.com/dshills/charlie/internal/integration/process"
	"github.com/dshills/charlie/internal/project/vfs"
	"github.com/dshills/charlie/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "Usage: charlie [file]\n")
		return 1
	}

	cfg, err := loadConfig(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "charlie: invalid configuration: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "charlie: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Info("charlie %s (%s) starting", version, commit)

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "charlie: %v\n", err)
		return 1
	}
	if err := term.EnterRawMode(); err != nil {
		fmt.Fprintf(stderr, "charlie: enable raw mode: %v\n", err)
		return 1
	}

	// fatal restores the terminal and reports err. Every exit path after
	// raw mode goes through here or through restore.
	restore := func() {
		if err := term.RestoreMode(); err != nil {
			logger.Error("restore terminal: %v", err)
		}
	}
	fatal := func(err error) int {
		_, _ = term.Write([]byte(backend.ClearScreen + backend.CursorHome))
		restore()
		logger.Error("fatal: %v", err)
		fmt.Fprintf(stderr, "charlie: %v\n", err)
		return 1
	}

	editor, err := app.New(term,
		app.WithConfig(cfg),
		app.WithFS(vfs.NewOSFS()),
		app.WithLogger(logger),
		app.WithRunner(process.NewRunner(
			process.WithShell(cfg.Shell),
			process.WithTimeout(cfg.ShellTimeout),
		)),
		app.WithVersion(version),
	)
	if err != nil {
		return fatal(err)
	}

	if len(args) == 1 {
		if err := editor.Open(args[0]); err != nil {
			return fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = editor.Run(ctx)
	switch {
	case err == nil:
		restore()
		logger.Info("exit")
		return 0
	case errors.Is(err, context.Canceled):
		_, _ = term.Write([]byte(backend.ClearScreen + backend.CursorHome))
		restore()
		logger.Info("terminated by signal")
		return 0
	default:
		return fatal(err)
	}
}

// loadConfig reads the environment and validates the result.
func loadConfig(lookup config.LookupFunc) (config.Config, error) {
	cfg, err := config.FromEnv(lookup)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger returns the logger selected by cfg and a func closing its
// file. Without a log path everything is discarded.
func openLogger(cfg config.Config) (*app.Logger, func(), error) {
	if cfg.LogPath == "" {
		return app.NullLogger, func() {}, nil
	}
	f, err := app.OpenLogFile(cfg.LogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.LogLevel)
	lc.Output = f
	logger := app.NewLogger(lc)
	return logger, func() { _ = f.Close() }, nil
}
