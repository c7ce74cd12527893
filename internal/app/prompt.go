package app

import (
	"github.com/dshills/charlie/internal/input/key"
)

// PromptHandler observes every key typed while a prompt is active,
// including the Enter or Escape that ends it. input is the prompt text
// after the key was applied.
type PromptHandler interface {
	PromptKey(e *Editor, input string, ev key.Event)
}

// prompt is an active one-line input.
type prompt struct {
	// label is a format string with one %s for the input.
	label   string
	buf     []byte
	handler PromptHandler
	// done receives the input, or ok=false when cancelled.
	done func(input string, ok bool)
}

// startPrompt enters prompt mode. handler may be nil.
func (e *Editor) startPrompt(label string, handler PromptHandler, done func(input string, ok bool)) {
	e.prompt = &prompt{
		label:   label,
		handler: handler,
		done:    done,
	}
	e.mode = ModePrompt
	e.status.SetMessage(label, "")
}

// processPromptKey handles a key in prompt mode. Enter commits only a
// non-empty input; Escape cancels.
func (e *Editor) processPromptKey(ev key.Event) {
	p := e.prompt

	switch {
	case ev.IsBackspace(), ev.Key == key.KeyDelete:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}

	case ev.IsEscape():
		e.status.ClearMessage()
		e.notifyPrompt(p, ev)
		e.endPrompt(p, "", false)
		return

	case ev.IsEnter():
		if len(p.buf) > 0 {
			e.status.ClearMessage()
			e.notifyPrompt(p, ev)
			e.endPrompt(p, string(p.buf), true)
			return
		}

	case ev.IsPrintable():
		p.buf = append(p.buf, byte(ev.Rune))
	}

	e.notifyPrompt(p, ev)
	e.status.SetMessage(p.label, string(p.buf))
}

func (e *Editor) notifyPrompt(p *prompt, ev key.Event) {
	if p.handler != nil {
		p.handler.PromptKey(e, string(p.buf), ev)
	}
}

// endPrompt returns to normal mode before calling done, so done may
// start another prompt.
func (e *Editor) endPrompt(p *prompt, input string, ok bool) {
	e.prompt = nil
	e.mode = ModeNormal
	if p.done != nil {
		p.done(input, ok)
	}
}
