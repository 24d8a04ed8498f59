package kilo

import "kilo/internal/fileio"

// Buffer is the ordered sequence of Rows that make up the open document,
// plus document-level metadata. The Buffer owns all Rows exclusively.
type Buffer struct {
	rows     []Row
	filename string
	syntax   *Syntax
	dirty    int
}

// NumRows is the number of rows currently in the buffer.
func (b *Buffer) NumRows() int { return len(b.rows) }

// Dirty reports the count of unsaved mutations (zero means the on-disk
// file, if any, matches the buffer).
func (b *Buffer) Dirty() int { return b.dirty }

// Filename is the buffer's on-disk name, or "" if it has never been saved.
func (b *Buffer) Filename() string { return b.filename }

// Syntax is the currently selected language descriptor, or nil.
func (b *Buffer) Syntax() *Syntax { return b.syntax }

// Row returns the row at i. Callers must ensure 0 <= i < NumRows().
func (b *Buffer) Row(i int) *Row { return &b.rows[i] }

// updateRow regenerates a row's render and highlight state, then
// propagates any resulting change in its open-comment flag forward.
func (b *Buffer) updateRow(i int) {
	row := &b.rows[i]
	row.updateRender()
	b.updateSyntaxFrom(i)
}

// updateSyntaxFrom recomputes highlight state starting at row i and walks
// forward only as long as a row's open-comment flag actually changes —
// the iterative worklist form of the propagation the teacher implements
// recursively, bounded by NumRows()-i (see spec §4.4, §9).
func (b *Buffer) updateSyntaxFrom(i int) {
	for ; i < len(b.rows); i++ {
		row := &b.rows[i]
		openIn := i > 0 && b.rows[i-1].openComment
		hl, openOut := highlightRow(row.render, b.syntax, openIn)
		row.hl = hl
		changed := row.openComment != openOut
		row.openComment = openOut
		if !changed {
			return
		}
	}
}

// InsertRow inserts a new row at at holding a copy of data, shifting
// subsequent rows right and renumbering their index. It is a no-op if at
// is outside [0, NumRows()].
func (b *Buffer) InsertRow(at int, data []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}

	b.rows = append(b.rows, Row{})
	copy(b.rows[at+1:], b.rows[at:len(b.rows)-1])

	b.rows[at] = Row{index: at, chars: append([]byte(nil), data...)}
	for j := at + 1; j < len(b.rows); j++ {
		b.rows[j].index = j
	}

	b.updateRow(at)
	b.dirty++
}

// DeleteRow removes the row at at, if in range, shifting subsequent rows
// left and renumbering their index.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}

	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	for j := at; j < len(b.rows); j++ {
		b.rows[j].index = j
	}
	b.dirty++
}

// RowInsertChar splices byte c into row at at (clamped into [0,
// row.size()]).
func (b *Buffer) RowInsertChar(rowIdx, at int, c byte) {
	row := &b.rows[rowIdx]
	if at < 0 || at > row.size() {
		at = row.size()
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:len(row.chars)-1])
	row.chars[at] = c
	b.updateRow(rowIdx)
	b.dirty++
}

// RowAppendString concatenates data onto the end of row rowIdx's chars.
func (b *Buffer) RowAppendString(rowIdx int, data []byte) {
	row := &b.rows[rowIdx]
	row.chars = append(row.chars, data...)
	b.updateRow(rowIdx)
	b.dirty++
}

// RowDeleteChar removes the byte at at from row rowIdx, if in range.
func (b *Buffer) RowDeleteChar(rowIdx, at int) {
	row := &b.rows[rowIdx]
	if at < 0 || at >= row.size() {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	b.updateRow(rowIdx)
	b.dirty++
}

// SelectSyntax clears the current language descriptor and, if the buffer
// has a filename, reselects one by matching its patterns; on a match it
// re-highlights every row in the document.
func (b *Buffer) SelectSyntax() {
	b.syntax = selectSyntax(b.filename)
	for i := range b.rows {
		b.updateSyntaxFrom(i)
	}
}

// rowsToBytes returns the chars of every row, in order, for fileio.Save
// (which adds the trailing '\n' to each).
func (b *Buffer) rowsToBytes() [][]byte {
	out := make([][]byte, len(b.rows))
	for i := range b.rows {
		out[i] = b.rows[i].chars
	}
	return out
}

// Load replaces the buffer's contents with filename's lines and selects a
// syntax for it. It resets dirty to zero on success.
func (b *Buffer) Load(filename string) error {
	b.filename = filename
	b.SelectSyntax()

	lines, err := fileio.Load(filename)
	if err != nil {
		return err
	}
	b.rows = nil
	for _, line := range lines {
		b.InsertRow(len(b.rows), line)
	}
	b.dirty = 0
	return nil
}

// Save writes the buffer to its filename, returning the number of bytes
// written. On success dirty is reset to zero; on failure dirty is left
// unchanged.
func (b *Buffer) Save() (int, error) {
	n, err := fileio.Save(b.filename, b.rowsToBytes())
	if err != nil {
		return 0, err
	}
	b.dirty = 0
	return n, nil
}

// SetFilename sets the buffer's filename without touching its contents,
// used after a save-as prompt supplies a new name.
func (b *Buffer) SetFilename(name string) { b.filename = name }
