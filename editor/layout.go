package editor

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/furl/fold"
	graphemeutil "github.com/iw2rmb/furl/internal/grapheme"
	"github.com/iw2rmb/furl/state"
)

type layoutKey struct {
	docVersion    uint64
	configVersion uint64
	foldGen       uint64
	tabWidth      int
}

// layoutToken is one rendered unit of a visual row: a grapheme of document
// text, or the placeholder of a fold.
type layoutToken struct {
	text string
	// from/to are the document offsets the token covers.
	from, to int
	// startCell is the cell offset of the token within its row.
	startCell int
	cells     int

	placeholder bool
	fold        fold.Range
	onClick     func() bool
}

type layoutRow struct {
	block  fold.LineBlock
	tokens []layoutToken
	cells  int
}

type layoutCache struct {
	valid bool
	key   layoutKey
	rows  []layoutRow
}

func (m *Model) layoutKey() layoutKey {
	st := m.sess.st
	return layoutKey{
		docVersion:    st.DocVersion(),
		configVersion: st.ConfigVersion(),
		foldGen:       fold.FoldedRanges(st).Generation(),
		tabWidth:      m.cfg.TabWidth,
	}
}

func (m *Model) ensureLayout() layoutCache {
	key := m.layoutKey()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	st := m.sess.st
	blocks := fold.LineBlocks(st, 0, st.Doc().Len())
	cache := layoutCache{
		valid: true,
		key:   key,
		rows:  make([]layoutRow, 0, len(blocks)),
	}
	for _, b := range blocks {
		cache.rows = append(cache.rows, buildRow(st, b, m.cfg.TabWidth, m.sess.unfolder))
	}
	m.layout = cache
	return cache
}

// unfolder returns the click handler of the placeholder for r.
func (s *session) unfolder(r fold.Range) func() bool {
	return func() bool {
		return s.dispatch(state.TransactionSpec{
			Effects:   []state.Effect{fold.UnfoldEffect.Of(r)},
			UserEvent: "unfold.pointer",
		}) == nil
	}
}

func buildRow(st *state.State, b fold.LineBlock, tabWidth int, onClick func(fold.Range) func() bool) layoutRow {
	row := layoutRow{block: b}
	doc := st.Doc()
	pos := b.From
	for r := range fold.FoldedRanges(st).Query(b.From, b.To) {
		if r.To <= pos {
			continue
		}
		if r.From < pos {
			// Overlaps the fold rendered before it.
			pos = r.To
			continue
		}
		row.appendText(doc.Slice(pos, r.From), pos, tabWidth)
		click := onClick(r)
		text := sanitizeSingleLine(fold.Placeholder(st, r, click))
		row.append(layoutToken{
			text:        text,
			from:        r.From,
			to:          r.To,
			cells:       graphemeutil.Width(text),
			placeholder: true,
			fold:        r,
			onClick:     click,
		})
		pos = r.To
	}
	row.appendText(doc.Slice(pos, b.To), pos, tabWidth)
	return row
}

func (r *layoutRow) append(tok layoutToken) {
	tok.startCell = r.cells
	r.tokens = append(r.tokens, tok)
	r.cells += tok.cells
}

func (r *layoutRow) appendText(text string, from, tabWidth int) {
	for _, gr := range graphemeutil.Split(text) {
		n := utf8.RuneCountInString(gr)
		tok := layoutToken{from: from, to: from + n}
		from += n
		switch gr {
		case "\n", "\r", "\r\n":
			// Line breaks inside a row come from overlapping folds.
		case "\t":
			tok.cells = tabAdvance(r.cells, tabWidth)
			tok.text = strings.Repeat(" ", tok.cells)
		default:
			tok.text = gr
			tok.cells = graphemeutil.Width(gr)
		}
		r.append(tok)
	}
}

func tabAdvance(cell, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - cell%tabWidth
}

func sanitizeSingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
}

// rowIndex returns the index of the row containing pos.
func (c layoutCache) rowIndex(pos int) (int, bool) {
	if len(c.rows) == 0 {
		return 0, false
	}
	i := sort.Search(len(c.rows), func(i int) bool { return c.rows[i].block.To >= pos })
	if i == len(c.rows) {
		i = len(c.rows) - 1
	}
	return i, true
}

// position returns the visual row and cell of pos.
func (c layoutCache) position(pos int) (row, cell int, ok bool) {
	row, ok = c.rowIndex(pos)
	if !ok {
		return 0, 0, false
	}
	return row, c.rows[row].cellAt(pos), true
}

// cellAt returns the cell where pos is drawn. Positions hidden by a fold map
// to its placeholder.
func (r layoutRow) cellAt(pos int) int {
	for _, tok := range r.tokens {
		if pos < tok.to {
			return tok.startCell
		}
	}
	return r.cells
}

// posAtCell returns the document offset drawn at cell, or the end of the row
// past its last token.
func (r layoutRow) posAtCell(cell int) int {
	if tok, ok := r.tokenAtCell(cell); ok {
		return tok.from
	}
	return r.block.To
}

func (r layoutRow) tokenAtCell(cell int) (layoutToken, bool) {
	if cell < 0 {
		cell = 0
	}
	for _, tok := range r.tokens {
		if tok.cells > 0 && cell < tok.startCell+tok.cells {
			return tok, true
		}
	}
	return layoutToken{}, false
}

func (c layoutCache) visualRowCount() int { return len(c.rows) }

func (c layoutCache) clampVisualRow(row int) int {
	if len(c.rows) == 0 {
		return 0
	}
	return clampInt(row, 0, len(c.rows)-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
