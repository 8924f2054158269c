package editor

// hit is the result of mapping a screen cell to the document.
type hit struct {
	row   layoutRow
	pos   int
	token layoutToken
	// onToken is true when the cell is drawn by token.
	onToken bool
	// gutter is true for cells left of the text; marker narrows it to the
	// fold marker column.
	gutter bool
	marker bool
}

// screenToDoc maps viewport-local coordinates to the document.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region. x/y are clamped into
// document bounds; gutter clicks map to the start of the row.
func (m *Model) screenToDoc(x, y int) hit {
	layout := m.ensureLayout()
	if len(layout.rows) == 0 {
		return hit{}
	}
	row := layout.rows[layout.clampVisualRow(m.viewport.YOffset+y)]
	if x < 0 {
		x = 0
	}

	g := m.resolveGutter()
	if x < g.width() {
		return hit{
			row:    row,
			pos:    row.block.From,
			gutter: true,
			marker: g.markers > 0 && x >= g.lineNums,
		}
	}

	cell := x - g.width()
	tok, ok := row.tokenAtCell(cell)
	if !ok {
		return hit{row: row, pos: row.block.To}
	}
	return hit{row: row, pos: tok.from, token: tok, onToken: true}
}

// docToScreen maps a document offset to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreen(pos int) (x int, y int, ok bool) {
	layout := m.ensureLayout()
	row, cell, ok := layout.position(clampInt(pos, 0, m.sess.st.Doc().Len()))
	if !ok {
		return 0, 0, false
	}

	x = cell + m.resolveGutter().width()
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
