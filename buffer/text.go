package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Doc is an immutable document snapshot.
type Doc struct {
	lines  []string
	starts []int // rune offset of each line start
	length int
}

// NewDoc builds a document from text. Lines are split on '\n'.
func NewDoc(text string) Doc {
	return docFromLines(splitLines(text))
}

func docFromLines(lines []string) Doc {
	if len(lines) == 0 {
		lines = []string{""}
	}
	starts := make([]int, len(lines))
	off := 0
	for i, line := range lines {
		starts[i] = off
		off += utf8.RuneCountInString(line)
		if i < len(lines)-1 {
			off++
		}
	}
	return Doc{lines: lines, starts: starts, length: off}
}

func (d Doc) ensure() Doc {
	if len(d.lines) == 0 {
		return docFromLines(nil)
	}
	return d
}

// Len returns the document length in runes.
func (d Doc) Len() int { return d.length }

// Lines returns the number of logical lines. An empty document has one line.
func (d Doc) Lines() int {
	if len(d.lines) == 0 {
		return 1
	}
	return len(d.lines)
}

// String returns the full document text.
func (d Doc) String() string {
	return strings.Join(d.ensure().lines, "\n")
}

// Line returns the line at row, clamped into document bounds.
func (d Doc) Line(row int) Line {
	d = d.ensure()
	row = clampInt(row, 0, len(d.lines)-1)
	text := d.lines[row]
	from := d.starts[row]
	return Line{
		Row:  row,
		From: from,
		To:   from + utf8.RuneCountInString(text),
		Text: text,
	}
}

// LineAt returns the line containing offset off. Offsets are clamped into
// [0, Len()]; an offset on a line break belongs to the line it ends.
func (d Doc) LineAt(off int) Line {
	d = d.ensure()
	off = clampInt(off, 0, d.length)
	row := sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > off }) - 1
	if row < 0 {
		row = 0
	}
	return d.Line(row)
}

// Slice returns the text in [from, to). Offsets are clamped and swapped when
// inverted.
func (d Doc) Slice(from, to int) string {
	d = d.ensure()
	from = clampInt(from, 0, d.length)
	to = clampInt(to, 0, d.length)
	if to < from {
		from, to = to, from
	}
	if from == to {
		return ""
	}

	start := d.LineAt(from)
	end := d.LineAt(to)
	if start.Row == end.Row {
		return runeSlice(start.Text, from-start.From, to-start.From)
	}

	var sb strings.Builder
	sb.WriteString(runeSlice(start.Text, from-start.From, start.Len()))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(d.lines[row])
	}
	sb.WriteByte('\n')
	sb.WriteString(runeSlice(end.Text, 0, to-end.From))
	return sb.String()
}

func (d Doc) lineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	return utf8.RuneCountInString(d.lines[row])
}

func runeSlice(s string, from, to int) string {
	if from >= to {
		return ""
	}
	r := []rune(s)
	from = clampInt(from, 0, len(r))
	to = clampInt(to, from, len(r))
	return string(r[from:to])
}

func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	if len(parts) == 0 {
		parts = []string{""}
	}
	return parts
}
