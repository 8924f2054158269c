package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/furl/fold"
	graphemeutil "github.com/iw2rmb/furl/internal/grapheme"
)

// gutterLayout holds the resolved gutter column widths. The line-number
// column comes first, then the fold marker column.
type gutterLayout struct {
	digits    int
	lineNums  int
	markers   int
	lineCount int
}

func (g gutterLayout) width() int { return g.lineNums + g.markers }

func (m Model) resolveGutter() gutterLayout {
	lineCount := m.sess.st.Doc().Lines()
	g := gutterLayout{lineCount: lineCount}
	if m.cfg.ShowLineNums {
		g.digits = gutterDigits(lineCount)
		g.lineNums = g.digits + 1
	}
	if m.cfg.ShowFoldGutter {
		g.markers = m.gutter.Width() + 1
	}
	return g
}

// LineNumberWidth returns the line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

type gutterSegment struct {
	text  string
	style lipgloss.Style
}

// gutterSegments returns the gutter cell of one visual row. marker is the
// fold marker of the row when it is on screen.
func (m Model) gutterSegments(g gutterLayout, row fold.LineBlock, marker fold.Marker, hasMarker, isCursorRow bool) []gutterSegment {
	var out []gutterSegment
	if g.lineNums > 0 {
		style := m.cfg.Style.LineNum
		if m.focused && isCursorRow {
			style = m.cfg.Style.LineNumActive
		}
		out = append(out, gutterSegment{
			text:  fmt.Sprintf("%*d ", g.digits, row.StartRow+1),
			style: style,
		})
	}
	if g.markers > 0 {
		text := ""
		if hasMarker {
			text = sanitizeSingleLine(m.gutter.Text(marker))
		}
		out = append(out, gutterSegment{
			text:  graphemeutil.Truncate(text, g.markers-1) + " ",
			style: m.cfg.Style.FoldMarker,
		})
	}
	return out
}

func renderGutterSegments(base lipgloss.Style, segs []gutterSegment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.style.Inherit(base).Render(seg.text))
	}
	return sb.String()
}

// visibleMarkers returns the fold markers of the rows on screen, keyed by
// row start offset.
func (m *Model) visibleMarkers(layout layoutCache) map[int]fold.Marker {
	if !m.cfg.ShowFoldGutter || len(layout.rows) == 0 {
		return nil
	}
	top := layout.clampVisualRow(m.viewport.YOffset)
	bottom := top
	if h := m.visibleRowCount(); h > 0 {
		bottom = layout.clampVisualRow(top + h - 1)
	} else {
		bottom = len(layout.rows) - 1
	}
	vp := fold.Viewport{From: layout.rows[top].block.From, To: layout.rows[bottom].block.To}

	markers := m.gutter.Markers(m.sess.st, vp)
	out := make(map[int]fold.Marker, len(markers))
	for _, mk := range markers {
		out[mk.Line.From] = mk
	}
	return out
}
