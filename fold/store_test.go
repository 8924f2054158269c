package fold

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/furl/buffer"
)

func storeOf(ranges ...Range) Store {
	s := EmptyStore()
	for _, r := range ranges {
		s = s.Insert(r)
	}
	return s
}

func change(t *testing.T, docLen int, edits ...buffer.Edit) buffer.ChangeSet {
	t.Helper()
	cs, err := buffer.NewChangeSet(docLen, edits...)
	require.NoError(t, err)
	return cs
}

func TestStore_InsertKeepsOrderAndRejectsDuplicates(t *testing.T) {
	s := storeOf(Range{From: 30, To: 40}, Range{From: 10, To: 20}, Range{From: 10, To: 15})

	assert.Equal(t, []Range{{From: 10, To: 15}, {From: 10, To: 20}, {From: 30, To: 40}}, s.Ranges())
	assert.True(t, s.Exists(10, 20))
	assert.False(t, s.Exists(10, 21))

	again := s.Insert(Range{From: 10, To: 20})
	assert.Equal(t, 3, again.Len())
	assert.Equal(t, s.Generation(), again.Generation(), "duplicate insert must return the same snapshot")
}

func TestStore_InsertRejectsInvalidRanges(t *testing.T) {
	s := EmptyStore()
	assert.Equal(t, 0, s.Insert(Range{From: 5, To: 5}).Len())
	assert.Equal(t, 0, s.Insert(Range{From: 9, To: 3}).Len())
	assert.Equal(t, uint64(0), s.Insert(Range{From: 9, To: 3}).Generation())
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	before := storeOf(Range{From: 10, To: 20})
	after := before.Insert(Range{From: 30, To: 40})

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, after.Len())
	assert.NotEqual(t, before.Generation(), after.Generation())

	ranges := after.Ranges()
	ranges[0] = Range{From: 0, To: 1}
	assert.True(t, after.Exists(10, 20), "Ranges must return a copy")
}

func TestStore_QueryTouchingInterval(t *testing.T) {
	s := storeOf(Range{From: 0, To: 5}, Range{From: 10, To: 20}, Range{From: 25, To: 30})

	got := slices.Collect(s.Query(5, 10))
	assert.Equal(t, []Range{{From: 0, To: 5}, {From: 10, To: 20}}, got)

	assert.Empty(t, slices.Collect(s.Query(21, 24)))
	assert.Equal(t, []Range{{From: 10, To: 20}}, slices.Collect(s.Query(15, 15)))

	// Restartable.
	seq := s.Query(0, 100)
	assert.Len(t, slices.Collect(seq), 3)
	assert.Len(t, slices.Collect(seq), 3)

	var first []Range
	for r := range s.Query(0, 100) {
		first = append(first, r)
		break
	}
	assert.Equal(t, []Range{{From: 0, To: 5}}, first)
}

func TestStore_RemoveIsBounded(t *testing.T) {
	s := storeOf(Range{From: 0, To: 5}, Range{From: 10, To: 20}, Range{From: 25, To: 30})
	all := func(from, to int) bool { return true }

	got := s.Remove(all, 12, 18)
	assert.Equal(t, []Range{{From: 0, To: 5}, {From: 25, To: 30}}, got.Ranges())

	same := s.Remove(func(from, to int) bool { return false }, 0, 100)
	assert.Equal(t, s.Generation(), same.Generation())

	assert.Equal(t, 0, s.Remove(all, 0, 100).Len())
}

func TestStore_MapDestroysContainedFold(t *testing.T) {
	s := storeOf(Range{From: 10, To: 20})
	got := s.Map(change(t, 40, buffer.Edit{From: 5, To: 25}))
	assert.Equal(t, 0, got.Len())
}

func TestStore_MapPreservesDisjointFold(t *testing.T) {
	s := storeOf(Range{From: 10, To: 20})
	got := s.Map(change(t, 40, buffer.Edit{From: 30, To: 30, Insert: "abc"}))
	assert.Equal(t, []Range{{From: 10, To: 20}}, got.Ranges())
	assert.Equal(t, s.Generation(), got.Generation())
}

func TestStore_MapExcludesTextInsertedAtBoundaries(t *testing.T) {
	s := storeOf(Range{From: 10, To: 20})

	atFrom := s.Map(change(t, 40, buffer.Edit{From: 10, To: 10, Insert: "abc"}))
	assert.Equal(t, []Range{{From: 13, To: 23}}, atFrom.Ranges())

	atTo := s.Map(change(t, 40, buffer.Edit{From: 20, To: 20, Insert: "abc"}))
	assert.Equal(t, []Range{{From: 10, To: 20}}, atTo.Ranges())
}

func TestStore_MapMergesCollidingFolds(t *testing.T) {
	s := storeOf(Range{From: 10, To: 20}, Range{From: 12, To: 20})
	got := s.Map(change(t, 40, buffer.Edit{From: 10, To: 13}))
	assert.Equal(t, []Range{{From: 10, To: 17}}, got.Ranges())
}

func TestMapRange(t *testing.T) {
	r, ok := MapRange(Range{From: 10, To: 20}, buffer.ChangeSet{})
	assert.True(t, ok)
	assert.Equal(t, Range{From: 10, To: 20}, r)

	_, ok = MapRange(Range{From: 20, To: 10}, buffer.ChangeSet{})
	assert.False(t, ok, "inverted ranges never map")

	r, ok = MapRange(Range{From: 10, To: 20}, change(t, 40, buffer.Edit{From: 10, To: 20, Insert: "new"}))
	assert.True(t, ok, "a replaced body keeps the range around the replacement")
	assert.Equal(t, Range{From: 10, To: 13}, r)

	_, ok = MapRange(Range{From: 10, To: 20}, change(t, 40, buffer.Edit{From: 12, To: 14}, buffer.Edit{From: 9, To: 11}))
	assert.True(t, ok)

	_, ok = MapRange(Range{From: 10, To: 20}, change(t, 40, buffer.Edit{From: 0, To: 30}))
	assert.False(t, ok, "a deleted range collapses")
}
