package app

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dshills/charlie/internal/integration/process"
)

// command identifies a command that may need unsaved-changes confirmation.
type command uint8

const (
	cmdNone command = iota
	cmdQuit
	cmdOpen
)

// confirmDiscard reports whether cmd may discard unsaved changes. While
// the document is dirty, cmd must be repeated QuitTimes more times.
func (e *Editor) confirmDiscard(cmd command) bool {
	if !e.doc.IsDirty() {
		return true
	}
	if e.pending != cmd {
		e.pending = cmd
		e.confirmLeft = e.cfg.QuitTimes
	}
	if e.confirmLeft <= 0 {
		return true
	}

	switch cmd {
	case cmdOpen:
		e.status.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-O %d more times to open another file.", e.confirmLeft)
	default:
		e.status.SetMessage("WARNING!!! File has unsaved changes. Press Esc or Ctrl-Q %d more times to quit.", e.confirmLeft)
	}
	e.confirmLeft--
	e.keepPending = true
	return false
}

// saveCommand saves the document, asking for a name first if it has none.
func (e *Editor) saveCommand() {
	if e.doc.Filename() != "" {
		e.save()
		return
	}
	e.startPrompt("Save as: %s (ESC to cancel)", nil, func(name string, ok bool) {
		if !ok {
			e.status.SetMessage("Save aborted")
			return
		}
		prev := e.doc.Filename()
		e.doc.SetFilename(name)
		if !e.save() {
			// Keep the document unnamed so the next save asks again.
			e.doc.SetFilename(prev)
		}
	})
}

func (e *Editor) save() bool {
	n, err := e.doc.Save()
	if err != nil {
		e.logger.Error("save failed: %v", err)
		e.status.SetMessage("Can't save! I/O error: %v", cause(err))
		return false
	}
	e.logger.Info("saved %s: %d bytes, %d rows", e.doc.Filename(), n, e.doc.Len())
	e.status.SetMessage("%d bytes written to disk", n)
	return true
}

// findCommand starts an incremental search. Cancelling restores the
// cursor.
func (e *Editor) findCommand() {
	s := newSearch(e)
	e.startPrompt("Search: %s (Use ESC/Arrows/Enter)", s, func(_ string, ok bool) {
		if !ok {
			s.restore(e)
		}
	})
}

// gotoCommand moves the cursor to the start of a 1-based line number.
// Out-of-range numbers are clamped to the document.
func (e *Editor) gotoCommand() {
	e.startPrompt("Go to line: %s (ESC to cancel)", nil, func(input string, ok bool) {
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			e.status.SetMessage("Invalid line number: %s", input)
			return
		}
		e.gotoLine(n)
	})
}

func (e *Editor) gotoLine(n int) {
	n = max(1, min(n, e.doc.Len()))
	e.cy = max(n-1, 0)
	e.cx = 0
}

// openCommand replaces the document with another file.
func (e *Editor) openCommand() {
	if !e.confirmDiscard(cmdOpen) {
		return
	}
	e.startPrompt("Open: %s (ESC to cancel)", nil, func(path string, ok bool) {
		if !ok {
			e.status.SetMessage("Open aborted")
			return
		}
		if err := e.Open(path); err != nil {
			e.status.SetMessage("Can't open %s: %v", path, cause(err))
			return
		}
		e.status.SetMessage("Opened %s (%d lines)", path, e.doc.Len())
	})
}

// shellCommand runs a command through the shell and reports the result
// on the message row. The document is not touched.
func (e *Editor) shellCommand() {
	e.startPrompt("Shell: %s (ESC to cancel)", nil, func(cmd string, ok bool) {
		if !ok {
			return
		}
		e.runShell(cmd)
	})
}

func (e *Editor) runShell(cmd string) {
	log := e.logger.WithComponent("shell")

	res, err := e.runner.Run(e.context(), cmd)
	if res != nil {
		log = log.WithField("run", res.ID)
		log.Info("%q finished: %s, exit %d in %s", cmd, res.State, res.ExitCode, res.Duration)
	}
	if err != nil {
		log.Error("%q failed: %v", cmd, err)
		if errors.Is(err, process.ErrTimeout) {
			e.status.SetMessage("Shell: %v", err)
			return
		}
		e.status.SetMessage("Shell failed: %v", err)
		return
	}
	e.status.SetMessage("Shell: %s", res.Summary())
}
