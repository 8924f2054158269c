package editor

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/iw2rmb/furl/fold"
)

type SnapshotToken uint64

// RowMap describes one rendered screen row.
type RowMap struct {
	ScreenRow int
	// StartRow/EndRow are the document lines joined into this row.
	StartRow int
	EndRow   int
	// From/To are the document offsets the row spans, hidden text included.
	From int
	To   int
	// Folds are the placeholders drawn on this row.
	Folds []fold.Range
}

type RenderSnapshot struct {
	Token      SnapshotToken
	DocVersion uint64
	Viewport   ViewportState
	Rows       []RowMap
}

type snapshotSignature struct {
	docVersion    uint64
	configVersion uint64
	foldGen       uint64
	selection     []uint64

	viewportWidth   int
	viewportHeight  int
	viewportYOffset int
	tabWidth        int
	focused         bool
	showLineNums    bool
	showFoldGutter  bool
}

func (m *Model) currentSnapshotSignature() snapshotSignature {
	st := m.sess.st
	sig := snapshotSignature{
		docVersion:      st.DocVersion(),
		configVersion:   st.ConfigVersion(),
		foldGen:         fold.FoldedRanges(st).Generation(),
		viewportWidth:   m.viewport.Width,
		viewportHeight:  m.viewport.Height,
		viewportYOffset: m.viewport.YOffset,
		tabWidth:        m.cfg.TabWidth,
		focused:         m.focused,
		showLineNums:    m.cfg.ShowLineNums,
		showFoldGutter:  m.cfg.ShowFoldGutter,
	}
	sel := st.Selection()
	sig.selection = append(sig.selection, uint64(sel.Main))
	for _, r := range sel.Ranges {
		sig.selection = append(sig.selection, uint64(r.Anchor), uint64(r.Head))
	}
	return sig
}

func hashSnapshotSignature(sig snapshotSignature) SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
			return
		}
		writeU64(0)
	}

	writeU64(sig.docVersion)
	writeU64(sig.configVersion)
	writeU64(sig.foldGen)
	writeI(len(sig.selection))
	for _, v := range sig.selection {
		writeU64(v)
	}
	writeI(sig.viewportWidth)
	writeI(sig.viewportHeight)
	writeI(sig.viewportYOffset)
	writeI(sig.tabWidth)
	writeB(sig.focused)
	writeB(sig.showLineNums)
	writeB(sig.showFoldGutter)

	tok := SnapshotToken(h.Sum64())
	if tok == 0 {
		return 1
	}
	return tok
}

func (m *Model) buildRenderSnapshot(token SnapshotToken) RenderSnapshot {
	s := RenderSnapshot{
		Token:      token,
		DocVersion: m.sess.st.DocVersion(),
		Viewport:   m.ViewportState(),
	}

	layout := m.ensureLayout()
	if len(layout.rows) == 0 {
		return s
	}

	start := layout.clampVisualRow(s.Viewport.TopVisualRow)
	end := min(start+s.Viewport.VisibleRows, len(layout.rows))

	s.Rows = make([]RowMap, 0, max(end-start, 0))
	for visualRow := start; visualRow < end; visualRow++ {
		lr := layout.rows[visualRow]
		row := RowMap{
			ScreenRow: visualRow - s.Viewport.TopVisualRow,
			StartRow:  lr.block.StartRow,
			EndRow:    lr.block.EndRow,
			From:      lr.block.From,
			To:        lr.block.To,
		}
		for _, tok := range lr.tokens {
			if tok.placeholder {
				row.Folds = append(row.Folds, tok.fold)
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// RenderSnapshot returns the row mapping of the current frame. The token
// changes whenever anything affecting the mapping changes.
func (m Model) RenderSnapshot() RenderSnapshot {
	tok := hashSnapshotSignature((&m).currentSnapshotSignature())
	return (&m).buildRenderSnapshot(tok)
}

func (m Model) snapshotMatchesCurrent(s RenderSnapshot) bool {
	if s.Token == 0 {
		return false
	}
	return s.Token == hashSnapshotSignature((&m).currentSnapshotSignature())
}

// ScreenToDocWithSnapshot maps screen coordinates using s. ok is false when s
// is stale.
func (m Model) ScreenToDocWithSnapshot(s RenderSnapshot, x, y int) (int, bool) {
	if len(s.Rows) == 0 || !m.snapshotMatchesCurrent(s) {
		return 0, false
	}
	return (&m).screenToDoc(x, y).pos, true
}
