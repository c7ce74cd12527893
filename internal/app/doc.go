// Package app implements the editor controller: the document being
// edited, the cursor, the modal prompt and the commands bound to
// control chords.
//
// The controller runs a single-threaded loop:
//
//	decode one key -> mutate document/cursor -> compose and flush one frame
//
// Blocking happens only inside the input decoder, whose reads time out
// quickly, so the loop never stalls for long.
//
// # Modes
//
// The editor is either in normal mode, where keys edit the document, or
// in prompt mode, where keys edit a one-line input shown on the message
// row. Save-as, search, goto-line, open-file and shell commands all use
// the same prompt. Search additionally observes every keystroke through
// a PromptHandler to move the cursor incrementally.
//
// # Unsaved changes
//
// Quitting (Escape or Ctrl-Q) and opening another file while the
// document is dirty require the command to be repeated; the number of
// extra presses comes from config.Config.QuitTimes. Any other key
// cancels the pending confirmation.
package app
