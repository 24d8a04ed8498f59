package kilo

import "bytes"

// searchState is the incremental search observer's own state: which row
// matched last, which direction to walk next, and a saved copy of the one
// row whose highlight was temporarily overlaid with HLMatch. It is
// created fresh for each call to find, per spec §9's "no shared globals
// behind the observer" note.
type searchState struct {
	lastMatch int
	direction int
	savedRow  int
	savedHl   []int
}

// find runs an incremental, directional, cyclic search over the buffer's
// rendered rows. It restores the cursor and scroll offsets it started
// with if the search is cancelled.
func (e *Editor) find() {
	savedCX, savedCY := e.vp.CX, e.vp.CY
	savedColOff, savedRowOff := e.vp.ColOff, e.vp.RowOff

	st := &searchState{lastMatch: -1, direction: 1}
	_, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", st.callback(e))
	if !ok {
		e.vp.CX, e.vp.CY = savedCX, savedCY
		e.vp.ColOff, e.vp.RowOff = savedColOff, savedRowOff
	}
}

// callback returns the PromptCallback driving one search invocation,
// closing over st and e.
func (st *searchState) callback(e *Editor) PromptCallback {
	return func(query []byte, key int) {
		if st.savedHl != nil {
			copy(e.buf.Row(st.savedRow).hl, st.savedHl)
			st.savedHl = nil
		}

		switch key {
		case KeyEnter, KeyEsc:
			st.lastMatch = -1
			st.direction = 1
			return
		case KeyArrowRight, KeyArrowDown:
			st.direction = 1
		case KeyArrowLeft, KeyArrowUp:
			st.direction = -1
		default:
			st.lastMatch = -1
			st.direction = 1
		}

		if st.lastMatch == -1 {
			st.direction = 1
		}

		n := e.buf.NumRows()
		if n == 0 {
			return
		}

		current := st.lastMatch
		for i := 0; i < n; i++ {
			current += st.direction
			switch {
			case current == -1:
				current = n - 1
			case current == n:
				current = 0
			}

			row := e.buf.Row(current)
			idx := bytes.Index(row.render, query)
			if idx == -1 {
				continue
			}

			st.lastMatch = current
			e.vp.CY = current
			e.vp.CX = rxToCx(row, idx)
			e.vp.RowOff = n

			st.savedRow = current
			st.savedHl = append([]int(nil), row.hl...)
			end := idx + len(query)
			if end > len(row.hl) {
				end = len(row.hl)
			}
			for k := idx; k < end; k++ {
				row.hl[k] = HLMatch
			}
			break
		}
	}
}
