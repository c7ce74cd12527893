// Package config holds the editor's runtime settings.
//
// Settings come from three places, applied in order:
//
//  1. Built-in defaults (Default)
//  2. CHARLIE_* environment variables (FromEnv)
//  3. Command-line overrides applied by the caller
//
// There are no configuration files. Validate reports every invalid
// setting at once so the user can fix them in one pass.
//
// Environment variables:
//
//	CHARLIE_TABSTOP       tab stop width, 1..16 (default 8)
//	CHARLIE_QUIT_TIMES    extra quit presses needed when dirty (default 1)
//	CHARLIE_MESSAGE_TIME  status message lifetime, Go duration (default 5s)
//	CHARLIE_EMPTY_SYMBOL  marker drawn on rows past the end of file (default ".")
//	CHARLIE_SHELL_TIMEOUT shell command timeout, Go duration (default 30s)
//	CHARLIE_LOG           log file path; logging is discarded when unset
//	CHARLIE_LOG_LEVEL     debug, info, warn or error (default info)
//	SHELL                 shell used for Ctrl-X commands (default /bin/sh)
package config
