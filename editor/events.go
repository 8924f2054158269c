package editor

import (
	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

type ChangeEvent struct {
	DocVersion uint64
	Selection  buffer.Selection
	// Cursor is the primary caret in row/col form.
	Cursor buffer.Pos
	// Selected is the primary selection in row/col form; empty for a caret.
	Selected buffer.Range
	Folds    []fold.Range

	// Full text; hosts diff if needed.
	Text string
}

func buildChangeEvent(s *state.State) ChangeEvent {
	doc := s.Doc()
	primary := s.Selection().Primary()
	cursor, _ := doc.PosFromOffset(primary.Head, buffer.OffsetClamp)
	anchor, _ := doc.PosFromOffset(primary.Anchor, buffer.OffsetClamp)
	return ChangeEvent{
		DocVersion: s.DocVersion(),
		Selection:  s.Selection(),
		Cursor:     cursor,
		Selected:   buffer.NormalizeRange(buffer.Range{Start: anchor, End: cursor}),
		Folds:      fold.FoldedRanges(s).Ranges(),
		Text:       doc.String(),
	}
}

// changeKey identifies what a ChangeEvent reports on, minus the selection.
type changeKey struct {
	docVersion uint64
	foldGen    uint64
}

func changeKeyOf(s *state.State) changeKey {
	return changeKey{docVersion: s.DocVersion(), foldGen: fold.FoldedRanges(s).Generation()}
}
