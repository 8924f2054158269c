package fold

import (
	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/state"
)

// LineBlock is a visual line: one document line, or the run of lines joined
// by folds into a single rendered row.
type LineBlock struct {
	From     int
	To       int
	StartRow int
	EndRow   int
}

// LineBlockAt returns the visual line containing pos. Folds that touch a
// line, including folds ending exactly at its start or starting exactly at
// its end, join the lines they span.
func LineBlockAt(s *state.State, pos int) LineBlock {
	doc := s.Doc()
	folded := FoldedRanges(s)
	first := doc.LineAt(pos)
	last := first

	for changed := true; changed; {
		changed = false
		folded.Between(first.From, last.To, func(r Range) bool {
			if r.From < first.From {
				first = doc.LineAt(r.From)
				changed = true
			}
			if r.To > last.To {
				last = doc.LineAt(r.To)
				changed = true
			}
			return true
		})
	}
	return blockOf(first, last)
}

func blockOf(first, last buffer.Line) LineBlock {
	return LineBlock{From: first.From, To: last.To, StartRow: first.Row, EndRow: last.Row}
}

// LineBlocks returns the visual lines touching [from, to] in order.
func LineBlocks(s *state.State, from, to int) []LineBlock {
	docLen := s.Doc().Len()
	var out []LineBlock
	for pos := from; ; {
		b := LineBlockAt(s, pos)
		out = append(out, b)
		if b.To >= to || b.To >= docLen {
			return out
		}
		pos = b.To + 1
	}
}
