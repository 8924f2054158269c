package editor

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/fold"
	graphemeutil "github.com/iw2rmb/furl/internal/grapheme"
	"github.com/iw2rmb/furl/state"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(string(msg.Runes), "input.paste")
		}
		return m, nil
	}

	for _, b := range m.cfg.FoldKeyMap.Bindings() {
		if key.Matches(msg, b.Key) {
			b.Run(m)
			return m, nil
		}
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveHorizontal(-1, false)
	case key.Matches(msg, km.Right):
		m.moveHorizontal(1, false)
	case key.Matches(msg, km.ShiftLeft):
		m.moveHorizontal(-1, true)
	case key.Matches(msg, km.ShiftRight):
		m.moveHorizontal(1, true)
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.Home):
		m.moveToRowEdge(false)
	case key.Matches(msg, km.End):
		m.moveToRowEdge(true)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteCluster(-1)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteCluster(1)
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.insertText("\n", "input")
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.insertText("\t", "input.type")
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes), "input.type")
			}
		}
	}

	return m, nil
}

func (m Model) setSelection(sel buffer.Selection, event string) {
	if sel.Equal(m.sess.st.Selection()) {
		return
	}
	_ = m.Dispatch(state.TransactionSpec{Selection: &sel, UserEvent: event})
}

// skipFolds moves pos out of every fold strictly containing it, towards dir.
func skipFolds(s *state.State, pos, dir int) int {
	folded := fold.FoldedRanges(s)
	for moved := true; moved; {
		moved = false
		for r := range folded.Query(pos, pos) {
			if r.From < pos && pos < r.To {
				if dir < 0 {
					pos = r.From
				} else {
					pos = r.To
				}
				moved = true
				break
			}
		}
	}
	return pos
}

func (m Model) moveHorizontal(dir int, extend bool) {
	s := m.sess.st
	doc := s.Doc()
	sel := s.Selection()
	out := make([]buffer.SelRange, len(sel.Ranges))
	for i, r := range sel.Ranges {
		head := r.Head
		if !extend && !r.IsEmpty() {
			if dir < 0 {
				head = r.From()
			} else {
				head = r.To()
			}
			out[i] = buffer.SelRange{Anchor: head, Head: head}
			continue
		}
		if dir < 0 {
			head = clusterBefore(doc, head)
		} else {
			head = clusterAfter(doc, head)
		}
		head = skipFolds(s, head, dir)
		anchor := head
		if extend {
			anchor = r.Anchor
		}
		out[i] = buffer.SelRange{Anchor: anchor, Head: head}
	}
	m.setSelection(buffer.NewSelection(sel.Main, out...), "select")
}

func (m *Model) moveVertical(dir int) {
	s := m.sess.st
	layout := m.ensureLayout()
	head := s.Selection().Primary().Head
	row, cell, ok := layout.position(head)
	if !ok {
		return
	}
	target := row + dir
	if target < 0 || target >= len(layout.rows) {
		return
	}
	pos := layout.rows[target].posAtCell(cell)
	m.setSelection(buffer.Cursor(pos), "select")
}

func (m *Model) moveToRowEdge(end bool) {
	layout := m.ensureLayout()
	i, ok := layout.rowIndex(m.sess.st.Selection().Primary().Head)
	if !ok {
		return
	}
	pos := layout.rows[i].block.From
	if end {
		pos = layout.rows[i].block.To
	}
	m.setSelection(buffer.Cursor(pos), "select")
}

// insertText replaces every selection range with text and leaves a caret
// after each insertion.
func (m Model) insertText(text, event string) {
	s := m.sess.st
	sel := s.Selection()
	edits := make([]buffer.Edit, 0, len(sel.Ranges))
	for _, r := range sel.Ranges {
		edits = append(edits, buffer.Edit{From: r.From(), To: r.To(), Insert: text})
	}
	m.applyEdits(edits, event)
}

// deleteCluster deletes the selection, or one grapheme in direction dir from
// each caret. A fold next to the caret is deleted as a whole.
func (m Model) deleteCluster(dir int) {
	s := m.sess.st
	doc := s.Doc()
	sel := s.Selection()
	edits := make([]buffer.Edit, 0, len(sel.Ranges))
	for _, r := range sel.Ranges {
		if !r.IsEmpty() {
			edits = append(edits, buffer.Edit{From: r.From(), To: r.To()})
			continue
		}
		if dir < 0 {
			from := skipFolds(s, clusterBefore(doc, r.Head), -1)
			edits = append(edits, buffer.Edit{From: from, To: r.Head})
		} else {
			to := skipFolds(s, clusterAfter(doc, r.Head), 1)
			edits = append(edits, buffer.Edit{From: r.Head, To: to})
		}
	}
	event := "delete.backward"
	if dir > 0 {
		event = "delete.forward"
	}
	m.applyEdits(mergeEdits(edits), event)
}

func (m Model) applyEdits(edits []buffer.Edit, event string) {
	s := m.sess.st
	cs, err := buffer.NewChangeSet(s.Doc().Len(), edits...)
	if err != nil || cs.Empty() {
		return
	}
	sel := s.Selection()
	carets := make([]buffer.SelRange, len(sel.Ranges))
	for i, r := range sel.Ranges {
		p := cs.MapPos(r.To(), buffer.BiasAfter)
		carets[i] = buffer.SelRange{Anchor: p, Head: p}
	}
	next := buffer.NewSelection(sel.Main, carets...)
	_ = m.Dispatch(state.TransactionSpec{Changes: edits, Selection: &next, UserEvent: event})
}

// mergeEdits joins deletions that touch or overlap, as produced by carets on
// neighbouring positions.
func mergeEdits(edits []buffer.Edit) []buffer.Edit {
	if len(edits) < 2 {
		return edits
	}
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b buffer.Edit) int { return cmp.Compare(a.From, b.From) })
	out := sorted[:1]
	for _, e := range sorted[1:] {
		last := &out[len(out)-1]
		if e.From <= last.To && e.Insert == "" && last.Insert == "" {
			last.To = max(last.To, e.To)
			continue
		}
		out = append(out, e)
	}
	return out
}

func clusterBefore(doc buffer.Doc, pos int) int {
	if pos <= 0 {
		return 0
	}
	line := doc.LineAt(pos)
	if pos == line.From {
		return pos - 1
	}
	clusters := graphemeutil.Split(doc.Slice(line.From, pos))
	if len(clusters) == 0 {
		return pos - 1
	}
	return pos - utf8.RuneCountInString(clusters[len(clusters)-1])
}

func clusterAfter(doc buffer.Doc, pos int) int {
	if pos >= doc.Len() {
		return doc.Len()
	}
	line := doc.LineAt(pos)
	if pos == line.To {
		return pos + 1
	}
	clusters := graphemeutil.Split(doc.Slice(pos, line.To))
	if len(clusters) == 0 {
		return pos + 1
	}
	return pos + utf8.RuneCountInString(clusters[0])
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.deleteCluster(-1)
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.insertText(s, "input.paste")
}

func (m Model) selectedText() string {
	r := m.sess.st.Selection().Primary()
	if r.IsEmpty() {
		return ""
	}
	return m.sess.st.Doc().Slice(r.From(), r.To())
}
