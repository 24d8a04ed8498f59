package kilo

// Viewport holds the cursor position and the visible window's scroll
// offsets, in the dual logical/render coordinate system described in
// spec §3. It has no document data of its own; every operation that
// needs to know a row's width takes the owning Buffer as a collaborator.
type Viewport struct {
	CX, CY         int
	RX             int
	RowOff, ColOff int
	ScreenRows     int
	ScreenCols     int
}

// clampCursorColumn snaps CX to the current row's width (0 on the virtual
// trailing line).
func (v *Viewport) clampCursorColumn(buf *Buffer) {
	rowLen := 0
	if v.CY < buf.NumRows() {
		rowLen = buf.Row(v.CY).size()
	}
	if v.CX > rowLen {
		v.CX = rowLen
	}
}

// MoveCursor applies one of the arrow keys to the cursor, wrapping at row
// boundaries on LEFT/RIGHT, and re-clamps CX into the landing row.
func (v *Viewport) MoveCursor(buf *Buffer, key int) {
	switch key {
	case KeyArrowLeft:
		if v.CX != 0 {
			v.CX--
		} else if v.CY > 0 {
			v.CY--
			v.CX = buf.Row(v.CY).size()
		}
	case KeyArrowRight:
		if v.CY < buf.NumRows() {
			row := buf.Row(v.CY)
			if v.CX < row.size() {
				v.CX++
			} else if v.CX == row.size() {
				v.CY++
				v.CX = 0
			}
		}
	case KeyArrowUp:
		if v.CY > 0 {
			v.CY--
		}
	case KeyArrowDown:
		if v.CY < buf.NumRows() {
			v.CY++
		}
	}
	v.clampCursorColumn(buf)
}

// Home moves the cursor to the start of the current line.
func (v *Viewport) Home() { v.CX = 0 }

// End moves the cursor to the end of the current line, if it is a real
// row.
func (v *Viewport) End(buf *Buffer) {
	if v.CY < buf.NumRows() {
		v.CX = buf.Row(v.CY).size()
	}
}

// PageUp snaps CY to the top of the viewport, then issues ScreenRows
// ARROW_UP moves.
func (v *Viewport) PageUp(buf *Buffer) {
	v.CY = v.RowOff
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(buf, KeyArrowUp)
	}
}

// PageDown snaps CY to the bottom of the viewport, then issues
// ScreenRows ARROW_DOWN moves.
func (v *Viewport) PageDown(buf *Buffer) {
	v.CY = v.RowOff + v.ScreenRows - 1
	if v.CY > buf.NumRows() {
		v.CY = buf.NumRows()
	}
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(buf, KeyArrowDown)
	}
}

// clampIntoWindow returns the scroll offset that keeps v inside
// [off, off+span).
func clampIntoWindow(v, off, span int) int {
	if v < off {
		return v
	}
	if v >= off+span {
		return v - span + 1
	}
	return off
}

// Scroll recomputes RX from the current (CY, CX) and adjusts RowOff/ColOff
// so the cursor stays inside the visible window. It must be called before
// every frame is drawn.
func (v *Viewport) Scroll(buf *Buffer) {
	v.RX = 0
	if v.CY < buf.NumRows() {
		v.RX = cxToRx(buf.Row(v.CY), v.CX)
	}
	v.RowOff = clampIntoWindow(v.CY, v.RowOff, v.ScreenRows)
	v.ColOff = clampIntoWindow(v.RX, v.ColOff, v.ScreenCols)
}
