package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults.
const (
	DefaultTabStop         = 8
	DefaultQuitTimes       = 1
	DefaultMessageTimeout  = 5 * time.Second
	DefaultEmptyLineSymbol = "."
	DefaultShell           = "/bin/sh"
	DefaultShellTimeout    = 30 * time.Second
	DefaultLogLevel        = "info"

	// MaxTabStop is the widest tab stop accepted.
	MaxTabStop = 16
)

// Environment variable names.
const (
	EnvTabStop      = "CHARLIE_TABSTOP"
	EnvQuitTimes    = "CHARLIE_QUIT_TIMES"
	EnvMessageTime  = "CHARLIE_MESSAGE_TIME"
	EnvEmptySymbol  = "CHARLIE_EMPTY_SYMBOL"
	EnvShellTimeout = "CHARLIE_SHELL_TIMEOUT"
	EnvLogPath      = "CHARLIE_LOG"
	EnvLogLevel     = "CHARLIE_LOG_LEVEL"
	EnvShell        = "SHELL"
)

// LookupFunc resolves an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds the editor settings.
type Config struct {
	// TabStop is the tab stop width used when rendering rows.
	TabStop int
	// QuitTimes is how many extra quit requests are needed to discard
	// unsaved changes.
	QuitTimes int
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration
	// EmptyLineSymbol is drawn on screen rows past the end of the document.
	EmptyLineSymbol string
	// Shell runs Ctrl-X commands as "Shell -c <command>".
	Shell string
	// ShellTimeout bounds a single shell command.
	ShellTimeout time.Duration
	// LogPath is the log file. Empty discards logs.
	LogPath string
	// LogLevel is the minimum level written to the log.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabStop:         DefaultTabStop,
		QuitTimes:       DefaultQuitTimes,
		MessageTimeout:  DefaultMessageTimeout,
		EmptyLineSymbol: DefaultEmptyLineSymbol,
		Shell:           DefaultShell,
		ShellTimeout:    DefaultShellTimeout,
		LogLevel:        DefaultLogLevel,
	}
}

// FromEnv returns the default configuration overlaid with environment
// variables resolved through lookup. A nil lookup uses os.LookupEnv.
// Values that fail to parse are reported as ValidationErrors; the
// returned Config still holds every value that did parse.
func FromEnv(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	var errs ValidationErrors

	if v, ok := lookup(EnvTabStop); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
			errs = append(errs, typeMismatch(EnvTabStop, v, "not an integer"))
		} else {
			cfg.TabStop = n
		}
	}
	if v, ok := lookup(EnvQuitTimes); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
			errs = append(errs, typeMismatch(EnvQuitTimes, v, "not an integer"))
		} else {
			cfg.QuitTimes = n
		}
	}
	if v, ok := lookup(EnvMessageTime); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err != nil {
			errs = append(errs, typeMismatch(EnvMessageTime, v, "not a duration"))
		} else {
			cfg.MessageTimeout = d
		}
	}
	if v, ok := lookup(EnvShellTimeout); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err != nil {
			errs = append(errs, typeMismatch(EnvShellTimeout, v, "not a duration"))
		} else {
			cfg.ShellTimeout = d
		}
	}
	if v, ok := lookup(EnvEmptySymbol); ok {
		cfg.EmptyLineSymbol = v
	}
	if v, ok := lookup(EnvShell); ok && v != "" {
		cfg.Shell = v
	}
	if v, ok := lookup(EnvLogPath); ok {
		cfg.LogPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	if len(errs) > 0 {
		return cfg, errs
	}
	return cfg, nil
}

// Validate checks every setting and returns all failures.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.TabStop < 1 || c.TabStop > MaxTabStop {
		errs = append(errs, &ValidationError{
			Path:    "tabStop",
			Message: "must be between 1 and " + strconv.Itoa(MaxTabStop),
			Value:   c.TabStop,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.QuitTimes < 0 {
		errs = append(errs, &ValidationError{
			Path:    "quitTimes",
			Message: "must not be negative",
			Value:   c.QuitTimes,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.MessageTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "messageTimeout",
			Message: "must be positive",
			Value:   c.MessageTimeout,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.ShellTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "shellTimeout",
			Message: "must be positive",
			Value:   c.ShellTimeout,
			Code:    ErrCodeOutOfRange,
		})
	}
	if c.EmptyLineSymbol == "" {
		errs = append(errs, &ValidationError{
			Path:    "emptyLineSymbol",
			Message: "must not be empty",
			Value:   c.EmptyLineSymbol,
			Code:    ErrCodeRequiredMissing,
		})
	}
	if c.Shell == "" {
		errs = append(errs, &ValidationError{
			Path:    "shell",
			Message: "must not be empty",
			Value:   c.Shell,
			Code:    ErrCodeRequiredMissing,
		})
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Path:    "logLevel",
			Message: "must be one of debug, info, warn, error",
			Value:   c.LogLevel,
			Code:    ErrCodeInvalidEnum,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func typeMismatch(path, value, msg string) *ValidationError {
	return &ValidationError{Path: path, Message: msg, Value: value, Code: ErrCodeTypeMismatch}
}
