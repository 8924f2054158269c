package fold

import "github.com/iw2rmb/furl/state"

// Target is what commands run against: a current state and a way to apply
// transactions to it.
type Target interface {
	State() *state.State
	Dispatch(specs ...state.TransactionSpec) error
}

// Command is a user-facing folding operation. It reports whether it found
// something to do; when it returns false nothing was dispatched.
type Command func(t Target) bool

// FoldCode folds the first selected line that has a foldable range.
func FoldCode(t Target) bool {
	s := t.State()
	for _, line := range selectedLines(s) {
		r, ok := Foldable(s, line.From, line.To)
		if !ok {
			continue
		}
		return dispatch(t, FoldEffect.Of(r))
	}
	return false
}

// UnfoldCode removes the innermost fold on every selected line.
func UnfoldCode(t Target) bool {
	s := t.State()
	var effects []state.Effect
	for _, line := range selectedLines(s) {
		if r, ok := findFold(s, line.From, line.To); ok {
			effects = append(effects, UnfoldEffect.Of(r))
		}
	}
	if len(effects) == 0 {
		return false
	}
	return dispatch(t, effects...)
}

// FoldAll folds every top-level foldable region. Lines inside a region
// folded by the same call are not queried.
func FoldAll(t Target) bool {
	s := t.State()
	docLen := s.Doc().Len()
	var effects []state.Effect
	for pos := 0; pos < docLen; {
		line := LineBlockAt(s, pos)
		r, ok := Foldable(s, line.From, line.To)
		if ok {
			effects = append(effects, FoldEffect.Of(r))
			pos = max(LineBlockAt(s, r.To).To, line.To) + 1
			continue
		}
		pos = line.To + 1
	}
	if len(effects) == 0 {
		return false
	}
	return dispatch(t, effects...)
}

// UnfoldAll removes every fold.
func UnfoldAll(t Target) bool {
	s := t.State()
	folded := FoldedRanges(s)
	if folded.Len() == 0 {
		return false
	}
	effects := make([]state.Effect, 0, folded.Len())
	for _, r := range folded.Ranges() {
		effects = append(effects, UnfoldEffect.Of(r))
	}
	return dispatch(t, effects...)
}

// ToggleFold unfolds the innermost fold on the primary line, or folds the
// line when nothing there is folded.
func ToggleFold(t Target) bool {
	s := t.State()
	line := LineBlockAt(s, s.Selection().Primary().Head)
	if r, ok := findFold(s, line.From, line.To); ok {
		return dispatch(t, UnfoldEffect.Of(r))
	}
	if r, ok := Foldable(s, line.From, line.To); ok {
		return dispatch(t, FoldEffect.Of(r))
	}
	return false
}

// selectedLines returns the visual line of every selection head, counting a
// line once even when several carets sit on it.
func selectedLines(s *state.State) []LineBlock {
	var lines []LineBlock
	for _, r := range s.Selection().Ranges {
		seen := false
		for _, l := range lines {
			if l.From <= r.Head && l.To >= r.Head {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		lines = append(lines, LineBlockAt(s, r.Head))
	}
	return lines
}

// findFold returns the fold touching [from, to] with the latest start.
func findFold(s *state.State, from, to int) (Range, bool) {
	var (
		found Range
		ok    bool
	)
	FoldedRanges(s).Between(from, to, func(r Range) bool {
		if !ok || found.From < r.From {
			found, ok = r, true
		}
		return true
	})
	return found, ok
}

func dispatch(t Target, effects ...state.Effect) bool {
	return t.Dispatch(enable(t.State(), state.TransactionSpec{Effects: effects})) == nil
}

// enable adds the folding extension to spec when s does not have it yet.
func enable(s *state.State, spec state.TransactionSpec) state.TransactionSpec {
	if !Enabled(s) {
		spec.AppendConfig = append(spec.AppendConfig, Extension())
	}
	return spec
}
