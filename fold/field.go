package fold

import "github.com/iw2rmb/furl/state"

// FoldEffect requests folding a range. The payload addresses the document
// after the changes of the transaction spec carrying it.
var FoldEffect = state.DefineEffect(MapRange)

// UnfoldEffect requests removing the fold with exactly the payload's
// boundaries.
var UnfoldEffect = state.DefineEffect(MapRange)

var foldField = state.DefineField(state.FieldSpec[Store]{
	Create: func(*state.State) Store { return EmptyStore() },
	Update: reconcile,
})

// reconcile computes the folds after tr: remap, apply effects in order, then
// evict folds containing the new primary caret.
func reconcile(folded Store, tr *state.Transaction) Store {
	folded = folded.Map(tr.Changes())

	unfolding := false
	for _, e := range tr.Effects() {
		if r, ok := FoldEffect.Value(e); ok {
			if !folded.Exists(r.From, r.To) {
				folded = folded.Insert(r)
			}
			continue
		}
		if r, ok := UnfoldEffect.Value(e); ok {
			unfolding = true
			folded = folded.Remove(func(from, to int) bool {
				return from == r.From && to == r.To
			}, r.From, r.To)
		}
	}

	if sel, ok := tr.Selection(); ok && !unfolding {
		head := sel.Primary().Head
		if folded.contains(head) {
			folded = folded.Remove(func(from, to int) bool {
				return !(to <= head || from >= head)
			}, head, head)
		}
	}
	return folded
}

// FoldedRanges returns the folds of s. It is empty when folding was never
// enabled for s.
func FoldedRanges(s *state.State) Store {
	folded, _ := foldField.Get(s)
	return folded
}

// Enabled reports whether the folding extension is installed in s.
func Enabled(s *state.State) bool {
	return foldField.Installed(s)
}
