package fold

import "github.com/iw2rmb/furl/state"

// Oracle reports the foldable range anchored at the line (or line block)
// spanning [lineFrom, lineTo], if any. Oracles must not have side effects.
type Oracle func(s *state.State, lineFrom, lineTo int) (Range, bool)

// Language is the active language configuration as far as folding is
// concerned.
type Language struct {
	Name   string
	Oracle Oracle
}

// LanguageFacet holds the active language. The last installed value wins.
var LanguageFacet = state.DefineFacet(func(values []Language) Language {
	if len(values) == 0 {
		return Language{}
	}
	return values[len(values)-1]
})

// OracleFacet collects additional oracles. They are consulted in
// installation order, before the language oracle.
var OracleFacet = state.DefineFacet(func(values []Oracle) []Oracle {
	return values
})

// Foldable asks the installed oracles for the range foldable at the line
// spanning [lineFrom, lineTo]. The first valid answer wins; inverted or empty
// answers are ignored.
func Foldable(s *state.State, lineFrom, lineTo int) (Range, bool) {
	oracles := OracleFacet.Read(s)
	if lang := LanguageFacet.Read(s); lang.Oracle != nil {
		oracles = append(oracles, lang.Oracle)
	}
	for _, oracle := range oracles {
		if oracle == nil {
			continue
		}
		if r, ok := oracle(s, lineFrom, lineTo); ok && r.Valid() {
			return r, true
		}
	}
	return Range{}, false
}
