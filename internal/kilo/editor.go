// Package kilo implements the editor engine: the text buffer, syntax
// highlighter, viewport/cursor controller, frame composer, key decoder,
// and prompt/search controllers described in spec.md. It owns no
// process-wide globals; an *Editor is an explicit value threaded through
// every operation, borrowed by its collaborators rather than reached for
// through a package-level variable.
package kilo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// QuitTimes is how many consecutive Ctrl-Q presses on a dirty buffer only
// warn; the press after them exits.
const QuitTimes = 3

// Terminal is the out-of-scope TTY collaborator the engine depends on:
// a short-poll byte source, window-size discovery, and scoped restoration
// of the terminal's original mode.
type Terminal interface {
	ReadByte() (b byte, ok bool, err error)
	WindowSize() (rows, cols int, err error)
	Restore()
}

// errQuit is returned by processKeypress to unwind Run cleanly on a
// confirmed Ctrl-Q.
var errQuit = errors.New("quit")

// Editor is the owned, non-global editor state: the document buffer, the
// cursor/viewport, and everything needed to read keys and draw frames.
type Editor struct {
	buf  Buffer
	vp   Viewport
	term Terminal
	out  io.Writer
	dec  *Decoder

	statusMessage   string
	statusMessageAt time.Time

	quitTimes int
}

// New creates an Editor reading keys from term and writing frames to out.
// It queries the terminal's current window size to size the viewport.
func New(term Terminal, out io.Writer) (*Editor, error) {
	e := &Editor{
		term:      term,
		out:       out,
		dec:       NewDecoder(term),
		quitTimes: QuitTimes,
	}
	if err := e.syncWindowSize(); err != nil {
		return nil, fmt.Errorf("getting window size: %w", err)
	}
	return e, nil
}

func (e *Editor) syncWindowSize() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return err
	}
	e.vp.ScreenRows = rows - 2 // status bar + message bar
	e.vp.ScreenCols = cols
	return nil
}

// Open loads filename into the buffer. The caller is expected to treat a
// failure here as fatal, per spec §7(a).
func (e *Editor) Open(filename string) error {
	return e.buf.Load(filename)
}

// Die restores the terminal, clears the screen, reports cause to stderr,
// and terminates the process with a non-zero exit code. It is the fatal
// path of spec §7(a): setup/I-O errors the editor cannot recover from.
func (e *Editor) Die(cause error) {
	e.term.Restore()
	fmt.Fprint(e.out, "\x1b[2J\x1b[H")
	fmt.Fprintf(os.Stderr, "kilo: %v\n", cause)
	os.Exit(1)
}

// SetStatusMessage sets the message-bar text and restarts its 5-second
// visibility window.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageAt = time.Now()
}

// Run drives the editor loop: refresh, read one key, dispatch, repeat,
// until a confirmed quit or a fatal error.
func (e *Editor) Run() {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.RefreshScreen()
		err := e.processKeypress()
		if err == nil {
			continue
		}
		if errors.Is(err, errQuit) {
			e.term.Restore()
			fmt.Fprint(e.out, "\x1b[2J\x1b[H")
			return
		}
		e.Die(err)
	}
}

func (e *Editor) processKeypress() error {
	key, err := e.dec.NextKey()
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	switch key {
	case KeyEnter:
		e.insertNewline()

	case Ctrl('q'):
		if e.buf.Dirty() > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		return errQuit

	case Ctrl('s'):
		e.save()

	case KeyHome:
		e.vp.Home()

	case KeyEnd:
		e.vp.End(&e.buf)

	case Ctrl('f'):
		e.find()

	case KeyBackspace, Ctrl('h'), KeyDel:
		if key == KeyDel {
			e.vp.MoveCursor(&e.buf, KeyArrowRight)
		}
		e.deleteChar()

	case KeyPageUp:
		e.vp.PageUp(&e.buf)

	case KeyPageDown:
		e.vp.PageDown(&e.buf)

	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		e.vp.MoveCursor(&e.buf, key)

	case Ctrl('l'), KeyEsc:
		// no-op

	default:
		if key >= 0 && key < 256 {
			e.insertChar(byte(key))
		}
	}

	e.quitTimes = QuitTimes
	return nil
}

// insertChar inserts c at the cursor and advances it, growing the buffer
// with a fresh row first if the cursor sits on the virtual trailing line.
func (e *Editor) insertChar(c byte) {
	if e.vp.CY == e.buf.NumRows() {
		e.buf.InsertRow(e.buf.NumRows(), nil)
	}
	e.buf.RowInsertChar(e.vp.CY, e.vp.CX, c)
	e.vp.CX++
}

// insertNewline splits the current row at the cursor into two rows (or
// inserts a blank row, at column 0), then moves the cursor to the start
// of the new line.
func (e *Editor) insertNewline() {
	if e.vp.CX == 0 {
		e.buf.InsertRow(e.vp.CY, nil)
	} else {
		row := e.buf.Row(e.vp.CY)
		tail := append([]byte(nil), row.chars[e.vp.CX:]...)
		e.buf.InsertRow(e.vp.CY+1, tail)

		row = e.buf.Row(e.vp.CY)
		row.chars = row.chars[:e.vp.CX]
		e.buf.updateRow(e.vp.CY)
	}
	e.vp.CY++
	e.vp.CX = 0
}

// deleteChar removes the byte before the cursor, joining the current row
// into the previous one when the cursor is at column 0 of a non-first
// row. It is a no-op on the virtual trailing line or at the very start of
// the document.
func (e *Editor) deleteChar() {
	if e.vp.CY == e.buf.NumRows() {
		return
	}
	if e.vp.CX == 0 && e.vp.CY == 0 {
		return
	}

	row := e.buf.Row(e.vp.CY)
	if e.vp.CX > 0 {
		e.buf.RowDeleteChar(e.vp.CY, e.vp.CX-1)
		e.vp.CX--
		return
	}

	e.vp.CX = e.buf.Row(e.vp.CY - 1).size()
	e.buf.RowAppendString(e.vp.CY-1, row.chars)
	e.buf.DeleteRow(e.vp.CY)
	e.vp.CY--
}

// save persists the buffer, prompting for a filename first if the
// buffer has never been saved. Save failures surface as a transient
// status message rather than a fatal error (spec §7(b)).
func (e *Editor) save() {
	if e.buf.Filename() == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.buf.SetFilename(name)
		e.buf.SelectSyntax()
	}

	n, err := e.buf.Save()
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	e.SetStatusMessage("%d bytes written to disk", n)
}
