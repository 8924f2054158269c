package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = "x"
	}

	m := New(Config{Text: strings.Join(lines, "\n"), ShowLineNums: true})
	m = m.Blur()
	m = m.SetSize(10, 120)

	got := strings.Split(m.renderContent(), "\n")
	if len(got) != 120 {
		t.Fatalf("rows: got %d, want %d", len(got), 120)
	}
	for i, row := range got {
		want := fmt.Sprintf("%3d x", i+1)
		if row != want {
			t.Fatalf("row %d: got %q, want %q", i, row, want)
		}
	}
}

func TestRender_CursorStyleAppliesWhenFocused(t *testing.T) {
	m := New(Config{
		Text: "ab",
		Style: Style{
			Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		},
	})
	m = m.SetSize(10, 1)

	if got, want := m.renderContent(), " a b"; got != want {
		t.Fatalf("focused: got %q, want %q", got, want)
	}

	m = m.Blur()
	if got, want := m.renderContent(), "ab"; got != want {
		t.Fatalf("blurred: got %q, want %q", got, want)
	}
}

func TestRender_FoldedLinesCollapseToPlaceholder(t *testing.T) {
	m := newOutline(Config{ShowLineNums: true})
	m = m.Blur()
	m = m.SetSize(20, 5)

	if got, want := m.renderContent(), "1 a:\n2   b\n3   c\n4 d"; got != want {
		t.Fatalf("before fold: got %q, want %q", got, want)
	}

	m = foldOutline(t, m)
	if got, want := m.renderContent(), "1 a:…\n4 d"; got != want {
		t.Fatalf("after fold: got %q, want %q", got, want)
	}
}

func TestRender_FoldGutterMarkers(t *testing.T) {
	m := newOutline(Config{ShowFoldGutter: true})
	m = m.Blur()
	m = m.SetSize(20, 5)

	if got, want := m.renderContent(), "⌄ a:\n    b\n    c\n  d"; got != want {
		t.Fatalf("before fold: got %q, want %q", got, want)
	}

	m = foldOutline(t, m)
	if got, want := m.renderContent(), "› a:…\n  d"; got != want {
		t.Fatalf("after fold: got %q, want %q", got, want)
	}
}

func TestRender_CustomPlaceholderAndMarkers(t *testing.T) {
	m := newOutline(Config{
		ShowFoldGutter: true,
		FoldGutter:     fold.GutterConfig{OpenText: "-", ClosedText: "+"},
		Extensions: []state.Extension{fold.Extension(fold.Config{
			PlaceholderRenderer: fold.RendererFunc[fold.PlaceholderContext](func(ctx fold.PlaceholderContext) string {
				return fmt.Sprintf("[%d lines]", ctx.Lines)
			}),
		})},
	})
	m = m.Blur()
	m = m.SetSize(20, 5)
	m = foldOutline(t, m)

	if got, want := m.renderContent(), "+ a:[2 lines]\n  d"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_TabsExpandToTabStops(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4})
	m = m.Blur()
	m = m.SetSize(10, 1)

	if got, want := m.renderContent(), "a   b"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()
	m = m.SetSize(3, 2)

	if got, want := strings.Count(m.View(), "\n")+1, 2; got != want {
		t.Fatalf("view rows: got %d, want %d", got, want)
	}
}
