package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/charlie/internal/config"
	"github.com/dshills/charlie/internal/engine/buffer"
	"github.com/dshills/charlie/internal/input"
	"github.com/dshills/charlie/internal/input/key"
	"github.com/dshills/charlie/internal/integration/process"
	"github.com/dshills/charlie/internal/project/vfs"
	"github.com/dshills/charlie/internal/renderer"
	"github.com/dshills/charlie/internal/renderer/backend"
	"github.com/dshills/charlie/internal/renderer/statusline"
	"github.com/dshills/charlie/internal/renderer/viewport"
)

// statusRows is the number of screen rows below the text area.
const statusRows = 2

// helpMessage is shown when the editor starts.
const helpMessage = "HELP: Ctrl-S save | Ctrl-Q quit | Ctrl-W find | Ctrl-G goto | Ctrl-O open | Ctrl-X shell"

// Mode is the controller's input mode.
type Mode uint8

const (
	// ModeNormal edits the document.
	ModeNormal Mode = iota
	// ModePrompt edits the one-line prompt input.
	ModePrompt
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Editor is the editor controller.
type Editor struct {
	cfg     config.Config
	term    backend.Backend
	fs      vfs.VFS
	logger  *Logger
	runner  *process.Runner
	version string
	now     func() time.Time

	decoder    *input.Decoder
	doc        *Document
	view       *viewport.Viewport
	status     *statusline.StatusLine
	compositor *renderer.Compositor

	// Cursor: cy in [0, doc.Len()], cx in [0, row size].
	cx, cy int

	mode   Mode
	prompt *prompt

	// Pending unsaved-changes confirmation.
	pending     command
	confirmLeft int
	keepPending bool

	ctx context.Context
}

// Option configures an Editor.
type Option func(*Editor)

// WithConfig sets the editor configuration.
func WithConfig(cfg config.Config) Option {
	return func(e *Editor) {
		e.cfg = cfg
	}
}

// WithFS sets the file system used to open and save documents.
func WithFS(fsys vfs.VFS) Option {
	return func(e *Editor) {
		e.fs = fsys
	}
}

// WithLogger sets the logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRunner sets the shell command runner.
func WithRunner(r *process.Runner) Option {
	return func(e *Editor) {
		e.runner = r
	}
}

// WithVersion sets the version shown in the welcome banner.
func WithVersion(v string) Option {
	return func(e *Editor) {
		e.version = v
	}
}

// WithClock replaces time.Now for status message expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		e.now = now
	}
}

// New creates an editor drawing to term. The terminal must already be in
// raw mode; New queries its size once.
func New(term backend.Backend, opts ...Option) (*Editor, error) {
	e := &Editor{
		cfg:     config.Default(),
		term:    term,
		logger:  NullLogger,
		version: "dev",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.fs == nil {
		e.fs = vfs.NewOSFS()
	}
	if e.runner == nil {
		e.runner = process.NewRunner(
			process.WithShell(e.cfg.Shell),
			process.WithTimeout(e.cfg.ShellTimeout),
		)
	}

	rows, cols, err := term.WindowSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowSize, err)
	}
	e.view = viewport.New(rows-statusRows, cols)

	e.status = statusline.New(
		statusline.WithTimeout(e.cfg.MessageTimeout),
		statusline.WithClock(e.now),
	)
	e.compositor = renderer.NewCompositor(
		renderer.WithEmptyLineSymbol(e.cfg.EmptyLineSymbol),
		renderer.WithBanner("Charlie Text Editor "+e.version),
	)

	inputLog := e.logger.WithComponent("input")
	e.decoder = input.NewDecoder(contextReader{e}, input.WithFallbackHook(func(from input.State, b []byte) {
		inputLog.Debug("escape sequence degraded to Escape in state %s after %q", from, b)
	}))
	e.doc = NewDocument(e.fs, buffer.WithTabStop(e.cfg.TabStop))

	e.logger.Info("editor started: %dx%d window, tab stop %d", rows, cols, e.cfg.TabStop)
	return e, nil
}

// Document returns the document being edited.
func (e *Editor) Document() *Document {
	return e.doc
}

// Cursor returns the cursor as (x, y): x is a char index, y a row index.
func (e *Editor) Cursor() (int, int) {
	return e.cx, e.cy
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Viewport returns the viewport.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// StatusMessage returns the visible status message.
func (e *Editor) StatusMessage() string {
	return e.status.Message()
}

// SetStatusMessage shows a transient message on the message row.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.status.SetMessage(format, args...)
}

// Open loads path into the editor and resets the cursor and viewport.
func (e *Editor) Open(path string) error {
	if err := e.doc.Open(path); err != nil {
		e.logger.Error("open failed: %v", err)
		return err
	}
	e.cx, e.cy = 0, 0
	e.view.Reset()
	e.logger.Info("opened %s: %d rows", path, e.doc.Len())
	return nil
}

// Run processes keys until the user quits, ctx is done, or reading the
// terminal fails. A normal quit returns nil.
func (e *Editor) Run(ctx context.Context) error {
	e.ctx = ctx
	e.status.SetMessage(helpMessage)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Refresh(); err != nil {
			return err
		}

		ev, err := e.decoder.ReadKey()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("read key: %w", err)
		}

		if err := e.ProcessKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.logger.Info("quit")
				_, werr := e.term.Write([]byte(backend.ClearScreen + backend.CursorHome))
				return werr
			}
			return err
		}
	}
}

// Refresh scrolls the viewport to the cursor and writes one frame.
func (e *Editor) Refresh() error {
	// Horizontal scrolling follows the char index; see viewport.
	e.view.Scroll(e.cy, e.cx)

	renderX := 0
	if row := e.doc.Row(e.cy); row != nil {
		renderX = row.CharToRender(e.cx)
	}

	e.status.SetFilename(e.doc.Filename())
	e.status.SetModified(e.doc.IsDirty())
	e.status.SetPosition(e.cy+1, e.cx+1)
	e.status.SetTotalLines(e.doc.Len())

	frame := e.compositor.Compose(renderer.View{
		Document: e.doc,
		Viewport: e.view,
		Status:   e.status,
		CursorY:  e.cy,
		RenderX:  renderX,
	})
	if _, err := e.term.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ProcessKey applies one key event. It returns ErrQuit when the editor
// should exit.
func (e *Editor) ProcessKey(ev key.Event) error {
	if e.mode == ModePrompt {
		e.processPromptKey(ev)
		return nil
	}
	return e.processNormalKey(ev)
}

func (e *Editor) context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// contextReader reads from the terminal but fails once the editor's
// context is done. The terminal read times out quickly, so a cancelled
// context is noticed while the decoder waits for a key.
type contextReader struct {
	e *Editor
}

func (r contextReader) Read(p []byte) (int, error) {
	if err := r.e.context().Err(); err != nil {
		return 0, err
	}
	return r.e.term.Read(p)
}
