package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

// Config configures the editor Model.
type Config struct {
	// Initial text of the document.
	Text string

	// Extensions are installed into the initial editor state. Folding itself
	// is enabled on first use; pass fold.Extension to configure placeholders
	// up front.
	Extensions []state.Extension

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	// FoldKeyMap defaults to fold.DefaultKeyMap when left zero.
	FoldKeyMap fold.KeyMap

	// Rendering options.
	ShowLineNums   bool
	ShowFoldGutter bool
	FoldGutter     fold.GutterConfig
	// TabWidth defaults to 4.
	TabWidth int
	Style    Style

	ReadOnly     bool
	Clipboard    Clipboard
	ScrollPolicy ScrollPolicy

	// Logger receives transaction diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnChange is called after an update that changed the document, the
	// selection, or the folded ranges.
	OnChange func(ChangeEvent)
}
