package buffer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Bias resolves the ambiguity of mapping a position that sits exactly where
// text is inserted.
type Bias int8

const (
	// BiasBefore keeps the position before text inserted at it. A position
	// strictly inside a replaced range maps to the start of the replacement.
	BiasBefore Bias = -1

	// BiasAfter moves the position past text inserted at it. A position
	// strictly inside a replaced range maps to the end of the replacement.
	BiasAfter Bias = 1
)

// Edit replaces the runes in [From, To) with Insert.
type Edit struct {
	From   int
	To     int
	Insert string
}

func (e Edit) insertLen() int { return utf8.RuneCountInString(e.Insert) }

func (e Edit) noop() bool { return e.From == e.To && e.Insert == "" }

// step is a set of sorted, non-overlapping edits addressed against the same
// document.
type step struct {
	edits     []Edit
	lenBefore int
	lenAfter  int
}

// ChangeSet describes a document mutation. It is an ordered list of steps;
// each step is addressed against the document produced by the previous one.
//
// The zero ChangeSet is empty and maps every position to itself.
type ChangeSet struct {
	steps     []step
	lenBefore int
	lenAfter  int
}

// EmptyChangeSet returns a change set that leaves a document of docLen runes
// untouched.
func EmptyChangeSet(docLen int) ChangeSet {
	return ChangeSet{lenBefore: docLen, lenAfter: docLen}
}

// NewChangeSet validates edits against a document of docLen runes and returns
// a single-step change set. Edits may be given in any order; edits that
// neither delete nor insert are dropped.
func NewChangeSet(docLen int, edits ...Edit) (ChangeSet, error) {
	out := make([]Edit, 0, len(edits))
	for i, e := range edits {
		if e.To < e.From {
			return ChangeSet{}, fmt.Errorf("edit %d [%d,%d): %w", i, e.From, e.To, ErrEditInverted)
		}
		if e.From < 0 || e.To > docLen {
			return ChangeSet{}, fmt.Errorf("edit %d [%d,%d) in document of %d: %w", i, e.From, e.To, docLen, ErrEditOutOfRange)
		}
		if e.noop() {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return EmptyChangeSet(docLen), nil
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].From < out[j].From })
	lenAfter := docLen
	for i, e := range out {
		if i > 0 && out[i-1].To > e.From {
			return ChangeSet{}, fmt.Errorf("edits [%d,%d) and [%d,%d): %w", out[i-1].From, out[i-1].To, e.From, e.To, ErrEditOverlap)
		}
		lenAfter += e.insertLen() - (e.To - e.From)
	}

	st := step{edits: out, lenBefore: docLen, lenAfter: lenAfter}
	return ChangeSet{steps: []step{st}, lenBefore: docLen, lenAfter: lenAfter}, nil
}

// Empty reports whether the change set leaves every document untouched.
func (cs ChangeSet) Empty() bool { return len(cs.steps) == 0 }

// LenBefore returns the length of the document the change set applies to.
func (cs ChangeSet) LenBefore() int { return cs.lenBefore }

// LenAfter returns the length of the document the change set produces.
func (cs ChangeSet) LenAfter() int { return cs.lenAfter }

// Then returns a change set that applies cs followed by next. next must be
// addressed against the document cs produces.
func (cs ChangeSet) Then(next ChangeSet) ChangeSet {
	if next.Empty() {
		return cs
	}
	if cs.Empty() {
		return next
	}
	steps := make([]step, 0, len(cs.steps)+len(next.steps))
	steps = append(steps, cs.steps...)
	steps = append(steps, next.steps...)
	return ChangeSet{steps: steps, lenBefore: cs.lenBefore, lenAfter: next.lenAfter}
}

// Edits returns a copy of the edits of every step, in application order.
func (cs ChangeSet) Edits() [][]Edit {
	out := make([][]Edit, 0, len(cs.steps))
	for _, st := range cs.steps {
		out = append(out, append([]Edit(nil), st.edits...))
	}
	return out
}

// MapPos maps pos from the document before the change to the document after
// it.
//
// A position at the start of a replaced range stays at the start of the
// replacement, a position at the end of a replaced range moves to its end, and
// a position where text is purely inserted follows bias.
func (cs ChangeSet) MapPos(pos int, bias Bias) int {
	for _, st := range cs.steps {
		pos = st.mapPos(pos, bias)
	}
	return pos
}

func (st step) mapPos(pos int, bias Bias) int {
	delta := 0
	for _, e := range st.edits {
		if pos < e.From {
			break
		}
		del := e.To - e.From
		if pos < e.To || (pos == e.To && del == 0 && bias == BiasBefore) {
			if pos == e.From || bias == BiasBefore {
				return e.From + delta
			}
			return e.From + delta + e.insertLen()
		}
		delta += e.insertLen() - del
	}
	return pos + delta
}

// Apply applies the change set to doc.
func (cs ChangeSet) Apply(doc Doc) (Doc, error) {
	if cs.Empty() {
		return doc, nil
	}
	if doc.Len() != cs.lenBefore {
		return Doc{}, fmt.Errorf("document has %d runes, change set expects %d: %w", doc.Len(), cs.lenBefore, ErrLengthMismatch)
	}
	for _, st := range cs.steps {
		doc = st.apply(doc)
	}
	return doc, nil
}

func (st step) apply(doc Doc) Doc {
	var sb strings.Builder
	last := 0
	for _, e := range st.edits {
		sb.WriteString(doc.Slice(last, e.From))
		sb.WriteString(e.Insert)
		last = e.To
	}
	sb.WriteString(doc.Slice(last, doc.Len()))
	return NewDoc(sb.String())
}
