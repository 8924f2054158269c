package fold

import "github.com/iw2rmb/furl/buffer"

// Range is a folded or foldable interval of document offsets. A valid range
// has From < To.
type Range struct {
	From int
	To   int
}

// Valid reports whether r is non-empty and not inverted.
func (r Range) Valid() bool { return r.From < r.To }

// MapRange maps r through cs. From follows text inserted at it and To stays
// before text inserted at it, so typing at either boundary never grows the
// range. ok is false when the edit collapsed the range.
func MapRange(r Range, cs buffer.ChangeSet) (mapped Range, ok bool) {
	if cs.Empty() {
		return r, r.Valid()
	}
	mapped = Range{
		From: cs.MapPos(r.From, buffer.BiasAfter),
		To:   cs.MapPos(r.To, buffer.BiasBefore),
	}
	if !mapped.Valid() {
		return Range{}, false
	}
	return mapped, true
}
