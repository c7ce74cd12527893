package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Defaults for a Runner.
const (
	DefaultShell   = "/bin/sh"
	DefaultTimeout = 30 * time.Second

	// DefaultMaxOutput caps captured output; later bytes are dropped.
	DefaultMaxOutput = 64 * 1024

	// waitDelay bounds how long Run waits for output pipes after the
	// child is killed.
	waitDelay = time.Second
)

// Runner executes shell commands one at a time.
type Runner struct {
	shell     string
	timeout   time.Duration
	maxOutput int
	newID     func() string
}

// RunnerOption configures a Runner instance.
type RunnerOption func(*Runner)

// WithShell sets the shell binary. Empty keeps the default.
func WithShell(shell string) RunnerOption {
	return func(r *Runner) {
		if shell != "" {
			r.shell = shell
		}
	}
}

// WithTimeout sets the per-run timeout. Non-positive keeps the default.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxOutput sets the capture limit in bytes.
func WithMaxOutput(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.maxOutput = n
		}
	}
}

// WithIDGenerator overrides run ID generation, for deterministic tests.
func WithIDGenerator(fn func() string) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		shell:     DefaultShell,
		timeout:   DefaultTimeout,
		maxOutput: DefaultMaxOutput,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shell returns the configured shell.
func (r *Runner) Shell() string { return r.shell }

// Timeout returns the per-run timeout.
func (r *Runner) Timeout() time.Duration { return r.timeout }

// Run executes command with the shell and waits for it to finish.
//
// A non-zero exit is not an error: it is reported through the Result.
// Run returns an error only when the shell cannot be started, when the
// run times out (ErrTimeout), or when ctx is cancelled. The Result is
// non-nil whenever the command was started.
func (r *Runner) Run(ctx context.Context, command string) (*Result, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, ErrEmptyCommand
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out := &limitedBuffer{max: r.maxOutput}
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = waitDelay

	res := &Result{
		ID:       r.newID(),
		Command:  command,
		State:    StateCreated,
		ExitCode: -1,
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", r.shell, err)
	}
	res.Started = time.Now()
	res.State = StateRunning

	err := cmd.Wait()
	res.Duration = time.Since(res.Started)
	res.Output = out.Bytes()
	res.State, res.ExitCode = exitStatus(err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return res, fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
		}
		return res, ctxErr
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return res, fmt.Errorf("wait: %w", err)
	}
	return res, nil
}

func exitStatus(err error) (State, int) {
	if err == nil {
		return StateExited, 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return StateExited, -1
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return StateKilled, -1
	}
	return StateExited, exitErr.ExitCode()
}

// limitedBuffer keeps the first max bytes written and discards the rest
// while still reporting full writes, so the child never sees EPIPE.
type limitedBuffer struct {
	buf bytes.Buffer
	max int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}
