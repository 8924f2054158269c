package buffer

// SelRange is one selection range. Anchor stays put when the range is
// extended; Head is the moving end (the caret).
type SelRange struct {
	Anchor int
	Head   int
}

// From returns the smaller end of the range.
func (r SelRange) From() int {
	if r.Anchor < r.Head {
		return r.Anchor
	}
	return r.Head
}

// To returns the larger end of the range.
func (r SelRange) To() int {
	if r.Anchor > r.Head {
		return r.Anchor
	}
	return r.Head
}

func (r SelRange) IsEmpty() bool { return r.Anchor == r.Head }

// Selection is a non-empty list of ranges with one primary range.
type Selection struct {
	Ranges []SelRange
	Main   int
}

// Cursor returns a selection with a single caret at pos.
func Cursor(pos int) Selection {
	return Selection{Ranges: []SelRange{{Anchor: pos, Head: pos}}}
}

// NewSelection returns a selection over ranges with ranges[main] as primary.
// An empty ranges list yields a caret at 0.
func NewSelection(main int, ranges ...SelRange) Selection {
	if len(ranges) == 0 {
		return Cursor(0)
	}
	return Selection{
		Ranges: append([]SelRange(nil), ranges...),
		Main:   clampInt(main, 0, len(ranges)-1),
	}
}

// Primary returns the primary range.
func (s Selection) Primary() SelRange {
	if len(s.Ranges) == 0 {
		return SelRange{}
	}
	return s.Ranges[clampInt(s.Main, 0, len(s.Ranges)-1)]
}

// Equal reports whether both selections have the same ranges and primary.
func (s Selection) Equal(o Selection) bool {
	if len(s.Ranges) != len(o.Ranges) || s.Primary() != o.Primary() {
		return false
	}
	for i := range s.Ranges {
		if s.Ranges[i] != o.Ranges[i] {
			return false
		}
	}
	return true
}

// Map maps every range through cs. Carets follow inserted text; the ends of
// non-empty ranges keep their relative order.
func (s Selection) Map(cs ChangeSet) Selection {
	if cs.Empty() {
		return s
	}
	out := make([]SelRange, len(s.Ranges))
	for i, r := range s.Ranges {
		if r.IsEmpty() {
			p := cs.MapPos(r.Head, BiasAfter)
			out[i] = SelRange{Anchor: p, Head: p}
			continue
		}
		from, to := cs.MapPos(r.From(), BiasAfter), cs.MapPos(r.To(), BiasBefore)
		if to < from {
			to = from
		}
		if r.Anchor <= r.Head {
			out[i] = SelRange{Anchor: from, Head: to}
		} else {
			out[i] = SelRange{Anchor: to, Head: from}
		}
	}
	return Selection{Ranges: out, Main: s.Main}
}

// Clamp clamps every range end into [0, docLen].
func (s Selection) Clamp(docLen int) Selection {
	if len(s.Ranges) == 0 {
		return Cursor(0)
	}
	out := make([]SelRange, len(s.Ranges))
	for i, r := range s.Ranges {
		out[i] = SelRange{
			Anchor: clampInt(r.Anchor, 0, docLen),
			Head:   clampInt(r.Head, 0, docLen),
		}
	}
	return Selection{Ranges: out, Main: clampInt(s.Main, 0, len(out)-1)}
}
