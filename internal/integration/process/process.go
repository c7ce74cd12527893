package process

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// State represents how a run finished.
type State int

const (
	// StateCreated indicates the run has not started.
	StateCreated State = iota
	// StateRunning indicates the command is executing.
	StateRunning
	// StateExited indicates the command exited on its own.
	StateExited
	// StateKilled indicates the command was killed by a signal.
	StateKilled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateKilled:
		return "killed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Sentinel errors for process package.
var (
	// ErrEmptyCommand is returned when Run is given a blank command.
	ErrEmptyCommand = errors.New("empty command")

	// ErrTimeout is returned when a run exceeds the Runner's timeout.
	ErrTimeout = errors.New("command timed out")
)

// Result describes a finished run.
type Result struct {
	// ID is the unique identifier for this run.
	ID string

	// Command is the command line passed to the shell.
	Command string

	// State is how the run finished.
	State State

	// ExitCode is the exit status, or -1 if the process was killed or
	// never started.
	ExitCode int

	// Output holds stdout and stderr interleaved as written.
	Output []byte

	// Started is the time the process was started.
	Started time.Time

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r.State == StateExited && r.ExitCode == 0
}

// LastLine returns the last non-blank line of output, trimmed of
// surrounding whitespace.
func (r *Result) LastLine() string {
	out := bytes.TrimRight(r.Output, " \t\r\n")
	if i := bytes.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	return string(bytes.TrimSpace(out))
}

// Summary returns a one-line description suitable for a status message.
func (r *Result) Summary() string {
	var status string
	switch {
	case r.State == StateKilled:
		status = "killed"
	default:
		status = fmt.Sprintf("exit %d", r.ExitCode)
	}
	if line := r.LastLine(); line != "" {
		return fmt.Sprintf("[%s] %s", status, line)
	}
	return fmt.Sprintf("[%s]", status)
}
