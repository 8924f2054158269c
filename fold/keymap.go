package fold

import (
	"runtime"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds the folding commands.
type KeyMap struct {
	Fold, Unfold       key.Binding
	FoldAll, UnfoldAll key.Binding
	Toggle             key.Binding
}

// DefaultKeyMap returns the bindings for the running platform.
func DefaultKeyMap() KeyMap { return KeyMapFor(runtime.GOOS) }

// KeyMapFor returns the default bindings for goos. darwin binds option (alt)
// combinations only.
func KeyMapFor(goos string) KeyMap {
	if goos == "darwin" {
		return KeyMap{
			Fold:      key.NewBinding(key.WithKeys("alt+["), key.WithHelp("⌥[", "fold")),
			Unfold:    key.NewBinding(key.WithKeys("alt+]"), key.WithHelp("⌥]", "unfold")),
			FoldAll:   key.NewBinding(key.WithKeys("alt+{"), key.WithHelp("⌥⇧[", "fold all")),
			UnfoldAll: key.NewBinding(key.WithKeys("alt+}"), key.WithHelp("⌥⇧]", "unfold all")),
			Toggle:    key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("⌥z", "toggle fold")),
		}
	}
	return KeyMap{
		Fold:      key.NewBinding(key.WithKeys("ctrl+shift+[", "alt+["), key.WithHelp("ctrl+shift+[", "fold")),
		Unfold:    key.NewBinding(key.WithKeys("ctrl+shift+]", "alt+]"), key.WithHelp("ctrl+shift+]", "unfold")),
		FoldAll:   key.NewBinding(key.WithKeys("ctrl+alt+[", "alt+{"), key.WithHelp("ctrl+alt+[", "fold all")),
		UnfoldAll: key.NewBinding(key.WithKeys("ctrl+alt+]", "alt+}"), key.WithHelp("ctrl+alt+]", "unfold all")),
		Toggle:    key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "toggle fold")),
	}
}

// Binding pairs a key binding with the command it runs.
type Binding struct {
	Key key.Binding
	Run Command
}

// Bindings returns the key map as an ordered command table.
func (km KeyMap) Bindings() []Binding {
	return []Binding{
		{Key: km.Fold, Run: FoldCode},
		{Key: km.Unfold, Run: UnfoldCode},
		{Key: km.FoldAll, Run: FoldAll},
		{Key: km.UnfoldAll, Run: UnfoldAll},
		{Key: km.Toggle, Run: ToggleFold},
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Fold, km.Unfold}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Fold, km.Unfold, km.Toggle}, {km.FoldAll, km.UnfoldAll}}
}
