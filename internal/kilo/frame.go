package kilo

import (
	"fmt"
	"time"
)

// Version is the display version shown in the welcome banner.
const Version = "0.0.1"

// statusMessageLifetime bounds how long a status message remains visible.
const statusMessageLifetime = 5 * time.Second

// RefreshScreen composes one frame — hidden cursor, home, rows, status
// bar, message bar, cursor repositioned, cursor shown — into a single
// append buffer and writes it to the terminal in one call.
func (e *Editor) RefreshScreen() {
	e.vp.Scroll(&e.buf)

	var ab appendBuffer
	ab.append("\x1b[?25l")
	ab.append("\x1b[H")

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.append(fmt.Sprintf("\x1b[%d;%dH", e.vp.CY-e.vp.RowOff+1, e.vp.RX-e.vp.ColOff+1))
	ab.append("\x1b[?25h")

	e.out.Write(ab.buf)
	ab.drop()
}

func isControlByte(c byte) bool {
	return c < 0x20 || c == 0x7f
}

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.vp.ScreenRows; y++ {
		filerow := y + e.vp.RowOff
		if filerow >= e.buf.NumRows() {
			e.drawEmptyLine(ab, y)
		} else {
			e.drawContentLine(ab, filerow)
		}
		ab.append("\x1b[K")
		ab.append("\r\n")
	}
}

func (e *Editor) drawEmptyLine(ab *appendBuffer, y int) {
	if e.buf.NumRows() == 0 && y == e.vp.ScreenRows/3 {
		welcome := "Kilo Editor -- version " + Version
		if len(welcome) > e.vp.ScreenCols {
			welcome = welcome[:e.vp.ScreenCols]
		}
		padding := (e.vp.ScreenCols - len(welcome)) / 2
		if padding > 0 {
			ab.append("~")
			padding--
		}
		for i := 0; i < padding; i++ {
			ab.append(" ")
		}
		ab.append(welcome)
		return
	}
	ab.append("~")
}

func (e *Editor) drawContentLine(ab *appendBuffer, filerow int) {
	row := e.buf.Row(filerow)
	length := len(row.render) - e.vp.ColOff
	if length < 0 {
		length = 0
	}
	if length > e.vp.ScreenCols {
		length = e.vp.ScreenCols
	}

	currentColor := -1
	for j := 0; j < length; j++ {
		idx := e.vp.ColOff + j
		c := row.render[idx]
		h := row.hl[idx]

		switch {
		case isControlByte(c):
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			ab.append("\x1b[7m")
			ab.appendBytes([]byte{sym})
			ab.append("\x1b[m")
			if currentColor != -1 {
				ab.append(fmt.Sprintf("\x1b[%dm", currentColor))
			}
		case h == HLNormal:
			ab.append("\x1b[39m")
			currentColor = 39
			ab.appendBytes([]byte{c})
		default:
			color := hlColor(h)
			if color != currentColor {
				currentColor = color
				ab.append(fmt.Sprintf("\x1b[%dm", color))
			}
			ab.appendBytes([]byte{c})
		}
	}
	ab.append("\x1b[39m")
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.append("\x1b[7m")

	filename := e.buf.Filename()
	if filename == "" {
		filename = "[No Name]"
	}
	if len(filename) > 20 {
		filename = filename[:20]
	}
	dirtyFlag := ""
	if e.buf.Dirty() > 0 {
		dirtyFlag = " (modified)"
	}
	status := fmt.Sprintf("%s - %d lines%s", filename, e.buf.NumRows(), dirtyFlag)
	if len(status) > e.vp.ScreenCols {
		status = status[:e.vp.ScreenCols]
	}

	filetype := "no ft"
	if e.buf.Syntax() != nil {
		filetype = e.buf.Syntax().Name
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.vp.CY+1, e.buf.NumRows())

	ab.append(status)
	for n := len(status); n < e.vp.ScreenCols; n++ {
		if e.vp.ScreenCols-n == len(rstatus) {
			ab.append(rstatus)
			break
		}
		ab.append(" ")
	}

	ab.append("\x1b[m")
	ab.append("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.append("\x1b[K")
	if e.statusMessage == "" || time.Since(e.statusMessageAt) >= statusMessageLifetime {
		return
	}
	msg := e.statusMessage
	if len(msg) > e.vp.ScreenCols {
		msg = msg[:e.vp.ScreenCols]
	}
	ab.append(msg)
}
