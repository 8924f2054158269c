package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	// Folded lines count as one visual row.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of visual rows of the document.
	TotalRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopVisualRow: top,
		VisibleRows:  m.visibleRowCount(),
		TotalRows:    (&m).ensureLayout().visualRowCount(),
	}
}

// ScreenToDoc maps viewport-local screen coordinates to a document offset.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) int {
	return (&m).screenToDoc(x, y).pos
}

// DocToScreen maps a document offset to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(pos int) (x int, y int, ok bool) {
	return (&m).docToScreen(pos)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
