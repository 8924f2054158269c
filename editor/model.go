package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

// session owns the current editor state. Model copies share one session, so
// closures handed to renderers keep working after the Model is copied.
type session struct {
	st     *state.State
	logger *zap.Logger
}

func (s *session) dispatch(specs ...state.TransactionSpec) error {
	tr, err := s.st.Update(specs...)
	if err != nil {
		s.logger.Warn("transaction rejected", zap.Error(err))
		return err
	}
	s.st = tr.State()
	s.logger.Debug("transaction applied",
		zap.String("user_event", tr.UserEvent()),
		zap.Bool("doc_changed", tr.DocChanged()),
		zap.Bool("reconfigured", tr.Reconfigured()),
		zap.Int("folds", fold.FoldedRanges(s.st).Len()),
	)
	return nil
}

// Model is a Bubble Tea component that renders and edits a folding-aware
// document.
//
// Model implements fold.Target, so fold commands can run against it directly.
type Model struct {
	cfg    Config
	sess   *session
	gutter *fold.Gutter

	focused bool

	viewport viewport.Model
	layout   layoutCache

	lastKey       changeKey
	lastSelection buffer.Selection

	mouseAnchor   int
	mouseDragging bool
}

func New(cfg Config) Model {
	if reflect.ValueOf(cfg.KeyMap).IsZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.ValueOf(cfg.FoldKeyMap).IsZero() {
		cfg.FoldKeyMap = fold.DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	st := state.Create(state.Config{Doc: cfg.Text, Extensions: cfg.Extensions})
	m := Model{
		cfg:      cfg,
		sess:     &session{st: st, logger: cfg.Logger},
		gutter:   fold.NewGutter(cfg.FoldGutter),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastKey = changeKeyOf(st)
	m.lastSelection = st.Selection()
	m.rebuildContent()
	return m
}

// State returns the current editor state.
func (m Model) State() *state.State { return m.sess.st }

// Dispatch applies a transaction to the editor state. The rendered content
// catches up on the next Update.
func (m Model) Dispatch(specs ...state.TransactionSpec) error {
	return m.sess.dispatch(specs...)
}

// Run executes a fold command against the editor.
func (m Model) Run(cmd fold.Command) bool { return cmd(m) }

// FoldedRanges returns the current folds in position order.
func (m Model) FoldedRanges() []fold.Range {
	return fold.FoldedRanges(m.sess.st).Ranges()
}

// Text returns the document text.
func (m Model) Text() string { return m.sess.st.Doc().String() }

// Gutter returns the fold marker synchronizer used for rendering.
func (m Model) Gutter() *fold.Gutter { return m.gutter }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
		m.sync(true)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Manual scrolling moves the gutter viewport without a state change.
		if !m.sync(false) {
			m.rebuildContent()
		}
	default:
		// Hosts may dispatch outside of Update.
		m.sync(true)
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after state changes and reports them to OnChange.
func (m *Model) sync(follow bool) bool {
	st := m.sess.st
	key := changeKeyOf(st)
	sel := st.Selection()
	if key == m.lastKey && sel.Equal(m.lastSelection) {
		if m.layout.key != m.layoutKey() {
			m.rebuildContent()
		}
		return false
	}
	selChanged := !sel.Equal(m.lastSelection)
	m.lastKey = key
	m.lastSelection = sel
	m.rebuildContent()
	if follow && selChanged {
		m.followCursor()
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(st))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row, _, ok := m.ensureLayout().position(m.sess.st.Selection().Primary().Head)
	if !ok {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		m.rebuildContent()
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
		m.rebuildContent()
	}
}
