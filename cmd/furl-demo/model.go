package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/editor"
	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

const sampleText = `furl demo
  Lines indented under a line fold with it.
  Put the caret on "furl demo" and press alt+z.
    Nested blocks fold on their own.
    Try alt+{ to fold everything and alt+} to unfold.
  Click a gutter marker or a placeholder to toggle.
Ctrl+Q quits.`

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type model struct {
	editor  editor.Model
	keys    fold.KeyMap
	help    help.Model
	logger  *zap.Logger
	watcher *fileWatcher
}

// newModel builds the demo model. watcher may be nil.
func newModel(cfg Config, text string, logger *zap.Logger, watcher *fileWatcher) model {
	keys := fold.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text: text,
		Extensions: []state.Extension{
			fold.LanguageFacet.Of(fold.Language{Name: "indent", Oracle: fold.IndentOracle(cfg.TabWidth)}),
			fold.Extension(fold.Config{PlaceholderText: cfg.Placeholder}),
		},
		FoldKeyMap:     keys,
		ShowLineNums:   cfg.LineNumbers,
		ShowFoldGutter: cfg.FoldGutter,
		TabWidth:       cfg.TabWidth,
		Style:          editor.DefaultStyle(),
		Logger:         logger,
	})
	return model{editor: ed, keys: keys, help: help.New(), logger: logger, watcher: watcher}
}

func (m model) Init() tea.Cmd { return m.watchNext() }

func (m model) watchNext() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.next()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	case fileChangedMsg:
		m.reload(msg.text)
		m.editor, _ = m.editor.Update(msg)
		return m, m.watchNext()
	case watchErrMsg:
		m.logger.Warn("watching file failed", zap.Error(msg.err))
		return m, m.watchNext()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// reload replaces the document with text through a minimal edit, so folds
// outside the changed region stay folded.
func (m model) reload(text string) {
	edit, ok := reloadEdit(m.editor.Text(), text)
	if !ok {
		return
	}
	_ = m.editor.Dispatch(state.TransactionSpec{
		Changes:   []buffer.Edit{edit},
		UserEvent: "input.reload",
	})
}

// gotoLine puts the caret at the start of the 1-based line n. Lines past the
// end clamp to the last line.
func (m model) gotoLine(n int) {
	if n < 1 {
		return
	}
	off, _ := m.editor.State().Doc().OffsetFromPos(buffer.Pos{Row: n - 1}, buffer.OffsetClamp)
	sel := buffer.Cursor(off)
	_ = m.editor.Dispatch(state.TransactionSpec{Selection: &sel, UserEvent: "select"})
}

func (m model) View() string {
	vp := m.editor.ViewportState()
	status := fmt.Sprintf("folds: %d  rows: %d", len(m.editor.FoldedRanges()), vp.TotalRows)
	return m.editor.View() + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys)
}
