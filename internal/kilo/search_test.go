package kilo

import "testing"

func newTestEditor(script string, rows, cols int) *Editor {
	term := newFakeTerminal(script, rows, cols)
	e := &Editor{
		term: term,
		out:  &discardWriter{},
		dec:  NewDecoder(term),
	}
	e.vp.ScreenRows = rows - 2
	e.vp.ScreenCols = cols
	return e
}

func TestFindLocatesMatchAndAdvancesWithArrowDown(t *testing.T) {
	e := newTestEditor("alp\x1b[B\r", 20, 40)
	e.buf.InsertRow(0, []byte("alpha"))
	e.buf.InsertRow(1, []byte("beta"))
	e.buf.InsertRow(2, []byte("alphabet"))

	e.find()

	if e.vp.CY != 2 || e.vp.CX != 0 {
		t.Errorf("CY,CX = %d,%d want 2,0 (skipped row1 to the alphabet match)", e.vp.CY, e.vp.CX)
	}
}

func TestFindCancelRestoresCursor(t *testing.T) {
	e := newTestEditor("alp\x1b", 20, 40)
	e.buf.InsertRow(0, []byte("alpha"))
	e.buf.InsertRow(1, []byte("beta"))
	e.vp.CX, e.vp.CY = 3, 1

	e.find()

	if e.vp.CX != 3 || e.vp.CY != 1 {
		t.Errorf("CX,CY = %d,%d want restored 3,1 after ESC cancel", e.vp.CX, e.vp.CY)
	}
}

func TestFindWrapsCyclically(t *testing.T) {
	e := newTestEditor("alp\x1b[B\x1b[B\r", 20, 40)
	e.buf.InsertRow(0, []byte("alpha"))
	e.buf.InsertRow(1, []byte("beta"))
	e.buf.InsertRow(2, []byte("alphabet"))

	e.find()

	// row0 -> (arrow down) row2 -> (arrow down, wraps past end) row0
	if e.vp.CY != 0 || e.vp.CX != 0 {
		t.Errorf("CY,CX = %d,%d want 0,0 after wrapping around", e.vp.CY, e.vp.CX)
	}
}

func TestFindNoMatchLeavesCursorUnchanged(t *testing.T) {
	e := newTestEditor("zzz\r", 20, 40)
	e.buf.InsertRow(0, []byte("alpha"))
	e.vp.CX, e.vp.CY = 2, 0

	e.find()

	// Enter with no match found commits the typed query but the cursor
	// never moved off its starting position.
	if e.vp.CX != 2 || e.vp.CY != 0 {
		t.Errorf("CX,CY = %d,%d want unchanged 2,0 when nothing matches", e.vp.CX, e.vp.CY)
	}
}

func TestFindRestoresOverlaidHighlightOnCancel(t *testing.T) {
	e := newTestEditor("alp\x1b", 20, 40)
	e.buf.syntax = goSyntax()
	e.buf.InsertRow(0, []byte("var alp = 1"))

	before := append([]int(nil), e.buf.Row(0).hl...)
	e.find()
	after := e.buf.Row(0).hl

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("hl[%d] = %d after cancelled search, want restored %d", i, after[i], before[i])
		}
	}
}
