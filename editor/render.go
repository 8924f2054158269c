package editor

import (
	"strings"

	"github.com/iw2rmb/furl/buffer"
)

func (m *Model) renderContent() string {
	layout := m.ensureLayout()
	g := m.resolveGutter()
	markers := m.visibleMarkers(layout)

	sel := m.sess.st.Selection()
	primary := sel.Primary().Head

	out := make([]string, 0, len(layout.rows))
	for _, row := range layout.rows {
		var sb strings.Builder
		if g.width() > 0 {
			mk, ok := markers[row.block.From]
			isCursorRow := primary >= row.block.From && primary <= row.block.To
			sb.WriteString(renderGutterSegments(m.cfg.Style.Gutter, m.gutterSegments(g, row.block, mk, ok, isCursorRow)))
		}
		sb.WriteString(m.renderRow(row, sel))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(row layoutRow, sel buffer.Selection) string {
	st := m.cfg.Style
	var sb strings.Builder
	eolCursor := false
	for _, r := range sel.Ranges {
		if m.focused && r.Head == row.block.To {
			eolCursor = true
		}
	}

	for _, tok := range row.tokens {
		if tok.cells == 0 {
			continue
		}
		switch {
		case m.focused && hasCaretAt(sel, tok.from):
			sb.WriteString(st.Cursor.Render(tok.text))
		case tok.placeholder:
			sb.WriteString(st.Placeholder.Inherit(st.Text).Render(tok.text))
		case selected(sel, tok.from, tok.to):
			sb.WriteString(st.Selection.Render(tok.text))
		default:
			sb.WriteString(st.Text.Render(tok.text))
		}
	}
	// Cursor at the end of a row is rendered as a 1-cell placeholder space.
	if eolCursor {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func hasCaretAt(sel buffer.Selection, pos int) bool {
	for _, r := range sel.Ranges {
		if r.Head == pos {
			return true
		}
	}
	return false
}

func selected(sel buffer.Selection, from, to int) bool {
	for _, r := range sel.Ranges {
		if !r.IsEmpty() && from >= r.From() && to <= r.To() {
			return true
		}
	}
	return false
}
