package fold

import (
	"iter"
	"slices"
	"sort"
	"sync/atomic"

	"github.com/iw2rmb/furl/buffer"
)

var storeGeneration atomic.Uint64

// Store is an immutable, position-ordered set of folded ranges.
//
// Every operation returns a new snapshot and leaves the receiver untouched.
// Operations that change nothing return the receiver itself, so Generation
// changes exactly when the content does.
type Store struct {
	ranges []Range
	gen    uint64
}

// EmptyStore returns a store without folds.
func EmptyStore() Store { return Store{} }

func newStore(ranges []Range) Store {
	if len(ranges) == 0 {
		return Store{gen: storeGeneration.Add(1)}
	}
	return Store{ranges: ranges, gen: storeGeneration.Add(1)}
}

// Len returns the number of folds.
func (s Store) Len() int { return len(s.ranges) }

// Generation identifies the snapshot content. The empty store built by
// EmptyStore has generation 0.
func (s Store) Generation() uint64 { return s.gen }

// Ranges returns a copy of all folds ordered by From, then To.
func (s Store) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// Query yields the folds touching [from, to] (r.From <= to && r.To >= from)
// in position order.
func (s Store) Query(from, to int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		s.Between(from, to, yield)
	}
}

// Between calls fn for every fold touching [from, to] in position order until
// fn returns false.
func (s Store) Between(from, to int, fn func(r Range) bool) {
	for _, r := range s.ranges {
		if r.From > to {
			return
		}
		if r.To < from {
			continue
		}
		if !fn(r) {
			return
		}
	}
}

// Exists reports whether a fold with exactly these boundaries is stored.
func (s Store) Exists(from, to int) bool {
	i := s.search(Range{From: from, To: to})
	return i < len(s.ranges) && s.ranges[i] == Range{From: from, To: to}
}

// Insert adds r. Invalid ranges and exact duplicates are ignored.
func (s Store) Insert(r Range) Store {
	if !r.Valid() || s.Exists(r.From, r.To) {
		return s
	}
	i := s.search(r)
	out := make([]Range, 0, len(s.ranges)+1)
	out = append(out, s.ranges[:i]...)
	out = append(out, r)
	out = append(out, s.ranges[i:]...)
	return newStore(out)
}

// Remove drops the folds touching [from, to] for which remove returns true.
func (s Store) Remove(remove func(from, to int) bool, from, to int) Store {
	var out []Range
	for i, r := range s.ranges {
		if r.From <= to && r.To >= from && remove(r.From, r.To) {
			if out == nil {
				out = append(make([]Range, 0, len(s.ranges)-1), s.ranges[:i]...)
			}
			continue
		}
		if out != nil {
			out = append(out, r)
		}
	}
	if out == nil {
		return s
	}
	return newStore(out)
}

// Map maps every fold through cs, dropping the folds the change collapsed.
// Folds that end up with identical boundaries are merged into one.
func (s Store) Map(cs buffer.ChangeSet) Store {
	if cs.Empty() || len(s.ranges) == 0 {
		return s
	}
	out := make([]Range, 0, len(s.ranges))
	for _, r := range s.ranges {
		mapped, ok := MapRange(r, cs)
		if !ok {
			continue
		}
		out = append(out, mapped)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	dedup := out[:0]
	for _, r := range out {
		if len(dedup) > 0 && dedup[len(dedup)-1] == r {
			continue
		}
		dedup = append(dedup, r)
	}
	if slices.Equal(dedup, s.ranges) {
		return s
	}
	return newStore(dedup)
}

// contains reports whether some fold strictly contains pos.
func (s Store) contains(pos int) bool {
	found := false
	s.Between(pos, pos, func(r Range) bool {
		if r.From < pos && r.To > pos {
			found = true
			return false
		}
		return true
	})
	return found
}

func (s Store) search(r Range) int {
	return sort.Search(len(s.ranges), func(i int) bool { return !less(s.ranges[i], r) })
}

func less(a, b Range) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}
