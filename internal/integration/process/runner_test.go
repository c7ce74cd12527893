package process

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(WithShell(""), WithTimeout(0))

	if r.Shell() != DefaultShell {
		t.Errorf("expected shell %q, got %q", DefaultShell, r.Shell())
	}
	if r.Timeout() != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, r.Timeout())
	}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner(WithIDGenerator(func() string { return "run-1" }))

	res, err := r.Run(context.Background(), "echo hello; echo world >&2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.ID != "run-1" {
		t.Errorf("expected ID run-1, got %q", res.ID)
	}
	if !res.Success() {
		t.Errorf("expected success, got state %v exit %d", res.State, res.ExitCode)
	}
	out := string(res.Output)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("expected stdout and stderr captured, got %q", out)
	}
	if res.Started.IsZero() {
		t.Error("expected start time to be set")
	}
}

func TestRunner_RunGeneratesIDs(t *testing.T) {
	r := NewRunner()

	a, err := r.Run(context.Background(), "true")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Run(context.Background(), "true")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestRunner_RunNonZeroExit(t *testing.T) {
	r := NewRunner()

	res, err := r.Run(context.Background(), "echo failing; exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error, got %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
	if res.Success() {
		t.Error("expected Success() false")
	}
	if got := res.Summary(); got != "[exit 3] failing" {
		t.Errorf("expected summary %q, got %q", "[exit 3] failing", got)
	}
}

func TestRunner_RunStdinClosed(t *testing.T) {
	r := NewRunner(WithTimeout(5 * time.Second))

	res, err := r.Run(context.Background(), "cat; echo done")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.LastLine() != "done" {
		t.Errorf("expected cat to see EOF, got output %q", res.Output)
	}
}

func TestRunner_RunEmptyCommand(t *testing.T) {
	r := NewRunner()

	if _, err := r.Run(context.Background(), "   "); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestRunner_RunBadShell(t *testing.T) {
	r := NewRunner(WithShell("/nonexistent/shell"))

	res, err := r.Run(context.Background(), "true")
	if err == nil {
		t.Fatal("expected start error")
	}
	if res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
}

func TestRunner_RunTimeout(t *testing.T) {
	r := NewRunner(WithTimeout(100 * time.Millisecond))

	start := time.Now()
	res, err := r.Run(context.Background(), "sleep 10")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timeout took too long: %v", elapsed)
	}
	if res == nil {
		t.Fatal("expected result on timeout")
	}
	if res.State != StateKilled {
		t.Errorf("expected state killed, got %v", res.State)
	}
}

func TestRunner_RunMaxOutput(t *testing.T) {
	r := NewRunner(WithMaxOutput(4))

	res, err := r.Run(context.Background(), "echo abcdefgh")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(res.Output) != "abcd" {
		t.Errorf("expected output capped to %q, got %q", "abcd", res.Output)
	}
}

func TestResult_LastLine(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", ""},
		{"one\n", "one"},
		{"one\ntwo\n\n\n", "two"},
		{"  spaced  \r\n", "spaced"},
	}

	for _, tt := range tests {
		res := &Result{Output: []byte(tt.output)}
		if got := res.LastLine(); got != tt.want {
			t.Errorf("LastLine(%q): expected %q, got %q", tt.output, tt.want, got)
		}
	}
}

func TestResult_Summary(t *testing.T) {
	killed := &Result{State: StateKilled, ExitCode: -1}
	if got := killed.Summary(); got != "[killed]" {
		t.Errorf("expected [killed], got %q", got)
	}
}

func TestStateString(t *testing.T) {
	if StateExited.String() != "exited" {
		t.Errorf("expected exited, got %s", StateExited)
	}
	if State(42).String() != "unknown(42)" {
		t.Errorf("expected unknown(42), got %s", State(42))
	}
}
