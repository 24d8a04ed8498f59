package kilo

// TabStop is the terminal tab width used by render expansion.
const TabStop = 8

// Row is one logical line of the document: raw bytes, a derived render
// expansion (tabs expanded to spaces), a parallel per-render-byte
// highlight class, and whether the row ends inside an unterminated
// multi-line comment. A Row is exclusively owned by the Buffer that holds
// it; there are no back-pointers, only the index field, which the Buffer
// maintains on every insert/delete.
type Row struct {
	index       int
	chars       []byte
	render      []byte
	hl          []int
	openComment bool
}

// size is the length of chars, the row's logical (cursor) width.
func (r *Row) size() int { return len(r.chars) }

// updateRender regenerates render from chars, expanding each '\t' to at
// least one space and then spaces up to the next TabStop boundary. All
// other bytes copy through unchanged.
func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

// cxToRx converts a logical column (into chars) to a render column,
// accounting for tab expansion.
func cxToRx(row *Row, cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(row.chars); j++ {
		if row.chars[j] == '\t' {
			rx += TabStop - (rx % TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx is the inverse of cxToRx: the first cx whose cumulative render
// width strictly exceeds rx, i.e. the logical column of the cell
// containing rx. If rx is past the end of the row, it returns row.size().
func rxToCx(row *Row, rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += TabStop - (curRx % TabStop)
		} else {
			curRx++
		}
		if curRx > rx {
			return cx
		}
	}
	return cx
}
