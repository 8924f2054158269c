package fold

import (
	"strings"

	"github.com/iw2rmb/furl/state"
)

// IndentOracle returns an oracle that folds the lines indented deeper than
// the queried line. Blank lines inside the block are folded with it; trailing
// blank lines are not. Tabs advance to the next multiple of tabWidth.
func IndentOracle(tabWidth int) Oracle {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return func(s *state.State, lineFrom, lineTo int) (Range, bool) {
		doc := s.Doc()
		start := doc.LineAt(lineFrom)
		base, ok := indentOf(start.Text, tabWidth)
		if !ok {
			return Range{}, false
		}

		end := start
		for row := start.Row + 1; row < doc.Lines(); row++ {
			line := doc.Line(row)
			indent, ok := indentOf(line.Text, tabWidth)
			if !ok {
				continue
			}
			if indent <= base {
				break
			}
			end = line
		}
		if end.Row == start.Row {
			return Range{}, false
		}
		return Range{From: start.To, To: end.To}, true
	}
}

// indentOf returns the indentation width of text. ok is false for blank
// lines.
func indentOf(text string, tabWidth int) (width int, ok bool) {
	for _, r := range text {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth - width%tabWidth
		default:
			return width, true
		}
	}
	return 0, strings.TrimSpace(text) != ""
}
