package fold

import (
	"github.com/iw2rmb/furl/internal/grapheme"
	"github.com/iw2rmb/furl/state"
)

const (
	DefaultOpenText   = "⌄"
	DefaultClosedText = "›"
)

// MarkerKind classifies a visible line for the fold gutter.
type MarkerKind uint8

const (
	MarkerNone MarkerKind = iota
	// MarkerOpen marks a line that can be folded.
	MarkerOpen
	// MarkerClosed marks a line that holds an active fold.
	MarkerClosed
)

// MarkerContext is passed to a marker renderer.
type MarkerContext struct {
	// Open is true for foldable lines and false for folded ones.
	Open bool
	Line LineBlock
}

// GutterConfig configures fold gutter markers.
type GutterConfig struct {
	// MarkerRenderer renders a marker. When nil, OpenText or ClosedText is
	// used.
	MarkerRenderer Renderer[MarkerContext]
	// OpenText defaults to DefaultOpenText.
	OpenText string
	// ClosedText defaults to DefaultClosedText.
	ClosedText string
}

// Marker is the gutter marker of one visible line.
type Marker struct {
	Line LineBlock
	Kind MarkerKind
}

// Viewport is the rendered window of a document, as offsets.
type Viewport struct {
	From int
	To   int
}

type markerSignature struct {
	docVersion    uint64
	configVersion uint64
	foldGen       uint64
	viewport      Viewport
}

// Gutter derives fold markers for the visible lines of a state.
//
// The marker list is cached and rebuilt in full whenever the document, the
// viewport, the configuration (and with it the language) or the folded
// ranges change. A Gutter belongs to one view; it is not safe for concurrent
// use.
type Gutter struct {
	cfg GutterConfig

	sig      markerSignature
	valid    bool
	markers  []Marker
	rebuilds int
}

// NewGutter returns a gutter with cfg, filling in default texts.
func NewGutter(cfg GutterConfig) *Gutter {
	if cfg.OpenText == "" {
		cfg.OpenText = DefaultOpenText
	}
	if cfg.ClosedText == "" {
		cfg.ClosedText = DefaultClosedText
	}
	return &Gutter{cfg: cfg}
}

// Markers returns the markers of the visual lines touching vp, in order.
// The returned slice must not be modified.
func (g *Gutter) Markers(s *state.State, vp Viewport) []Marker {
	sig := markerSignature{
		docVersion:    s.DocVersion(),
		configVersion: s.ConfigVersion(),
		foldGen:       FoldedRanges(s).Generation(),
		viewport:      vp,
	}
	if g.valid && sig == g.sig {
		return g.markers
	}

	lines := LineBlocks(s, vp.From, vp.To)
	markers := make([]Marker, 0, len(lines))
	for _, line := range lines {
		markers = append(markers, Marker{Line: line, Kind: markerKind(s, line)})
	}

	g.sig = sig
	g.valid = true
	g.markers = markers
	g.rebuilds++
	return g.markers
}

func markerKind(s *state.State, line LineBlock) MarkerKind {
	if _, ok := findFold(s, line.From, line.To); ok {
		return MarkerClosed
	}
	if _, ok := Foldable(s, line.From, line.To); ok {
		return MarkerOpen
	}
	return MarkerNone
}

// Rebuilds returns how many times the marker cache was rebuilt.
func (g *Gutter) Rebuilds() int { return g.rebuilds }

// Text returns the marker text for m. MarkerNone renders as "".
func (g *Gutter) Text(m Marker) string {
	if m.Kind == MarkerNone {
		return ""
	}
	open := m.Kind == MarkerOpen
	if g.cfg.MarkerRenderer != nil {
		return g.cfg.MarkerRenderer.Render(MarkerContext{Open: open, Line: m.Line})
	}
	if open {
		return g.cfg.OpenText
	}
	return g.cfg.ClosedText
}

// Width returns the cell width needed by the default marker texts.
func (g *Gutter) Width() int {
	return max(grapheme.Width(g.cfg.OpenText), grapheme.Width(g.cfg.ClosedText), 1)
}

// Click returns the transaction a click on the marker of the visual line at
// pos dispatches: unfold when the line holds a fold, otherwise fold when the
// line is foldable.
func (g *Gutter) Click(s *state.State, pos int) (state.TransactionSpec, bool) {
	line := LineBlockAt(s, pos)
	var spec state.TransactionSpec
	if r, ok := findFold(s, line.From, line.To); ok {
		spec.Effects = []state.Effect{UnfoldEffect.Of(r)}
	} else if r, ok := Foldable(s, line.From, line.To); ok {
		spec.Effects = []state.Effect{FoldEffect.Of(r)}
	} else {
		return state.TransactionSpec{}, false
	}
	return enable(s, spec), true
}
