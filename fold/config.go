package fold

import "github.com/iw2rmb/furl/state"

// DefaultPlaceholderText is shown in place of a folded range.
const DefaultPlaceholderText = "…"

// Renderer turns a render context into terminal text.
type Renderer[C any] interface {
	Render(ctx C) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[C any] func(ctx C) string

func (f RendererFunc[C]) Render(ctx C) string { return f(ctx) }

// PlaceholderContext is passed to a placeholder renderer.
type PlaceholderContext struct {
	Range Range
	// Lines is the number of line breaks hidden by the fold.
	Lines int
	// OnClick unfolds the range. Hosts call it when the placeholder is
	// clicked; it reports whether a transaction was dispatched.
	OnClick func() bool
}

// Config configures how folded ranges are presented.
type Config struct {
	// PlaceholderRenderer renders the placeholder. When nil, PlaceholderText
	// is used.
	PlaceholderRenderer Renderer[PlaceholderContext]
	// PlaceholderText defaults to DefaultPlaceholderText.
	PlaceholderText string
}

var configFacet = state.DefineFacet(func(values []Config) Config {
	var out Config
	for _, c := range values {
		if out.PlaceholderRenderer == nil {
			out.PlaceholderRenderer = c.PlaceholderRenderer
		}
		if out.PlaceholderText == "" {
			out.PlaceholderText = c.PlaceholderText
		}
	}
	if out.PlaceholderText == "" {
		out.PlaceholderText = DefaultPlaceholderText
	}
	return out
})

// Extension returns the folding extension: the folded-range field plus the
// given presentation config.
func Extension(cfg ...Config) state.Extension {
	exts := make([]state.Extension, 0, len(cfg)+1)
	exts = append(exts, foldField)
	for _, c := range cfg {
		exts = append(exts, configFacet.Of(c))
	}
	return state.Group(exts...)
}

// ReadConfig returns the effective folding config of s.
func ReadConfig(s *state.State) Config {
	return configFacet.Read(s)
}

// Placeholder renders the placeholder for r in s. onClick is handed to the
// configured renderer.
func Placeholder(s *state.State, r Range, onClick func() bool) string {
	cfg := ReadConfig(s)
	if cfg.PlaceholderRenderer == nil {
		return cfg.PlaceholderText
	}
	doc := s.Doc()
	return cfg.PlaceholderRenderer.Render(PlaceholderContext{
		Range:   r,
		Lines:   doc.LineAt(r.To).Row - doc.LineAt(r.From).Row,
		OnClick: onClick,
	})
}
