package editor

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// outline is a two-level document:
//
//	row 0 [0,2]   "a:"
//	row 1 [3,6]   "  b"
//	row 2 [7,10]  "  c"
//	row 3 [11,12] "d"
const outline = "a:\n  b\n  c\nd"

var outlineFold = fold.Range{From: 2, To: 10}

func indentExtensions() []state.Extension {
	return []state.Extension{
		fold.LanguageFacet.Of(fold.Language{Name: "indent", Oracle: fold.IndentOracle(2)}),
	}
}

func newOutline(cfg Config) Model {
	cfg.Text = outline
	cfg.Extensions = append(indentExtensions(), cfg.Extensions...)
	return New(cfg)
}

// settle lets the model pick up state changes made outside of Update.
func settle(m Model) Model {
	m, _ = m.Update(nil)
	return m
}

func dispatchSelection(t *testing.T, m Model, sel buffer.Selection) Model {
	t.Helper()
	if err := m.Dispatch(state.TransactionSpec{Selection: &sel}); err != nil {
		t.Fatalf("dispatch selection %v: %v", sel, err)
	}
	return settle(m)
}

func setCaret(t *testing.T, m Model, pos int) Model {
	t.Helper()
	return dispatchSelection(t, m, buffer.Cursor(pos))
}

func foldOutline(t *testing.T, m Model) Model {
	t.Helper()
	if !m.Run(fold.FoldCode) {
		t.Fatalf("fold command reported nothing to fold")
	}
	m = settle(m)
	if got := m.FoldedRanges(); len(got) != 1 || got[0] != outlineFold {
		t.Fatalf("folds after fold: got %v, want [%v]", got, outlineFold)
	}
	return m
}

func equalRanges(a, b []fold.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
