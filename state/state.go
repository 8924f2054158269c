package state

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/furl/buffer"
)

// Config configures a new State.
type Config struct {
	// Doc is the initial document text.
	Doc string
	// Selection is the initial selection. Nil places a caret at 0.
	Selection *buffer.Selection
	// Extensions form the initial configuration.
	Extensions []Extension
}

// State is an immutable editor state snapshot.
type State struct {
	doc        buffer.Doc
	sel        buffer.Selection
	conf       *configuration
	values     []any
	docVersion uint64
}

// Create builds the initial State.
func Create(cfg Config) *State {
	doc := buffer.NewDoc(cfg.Doc)
	sel := buffer.Cursor(0)
	if cfg.Selection != nil {
		sel = cfg.Selection.Clamp(doc.Len())
	}
	conf := resolve(append([]Extension(nil), cfg.Extensions...), 0)
	s := &State{doc: doc, sel: sel, conf: conf}
	s.values = make([]any, len(conf.fields))
	for i, f := range conf.fields {
		s.values[i] = f.create(s)
	}
	return s
}

func (s *State) Doc() buffer.Doc { return s.doc }

func (s *State) Selection() buffer.Selection { return s.sel }

// DocVersion increments every time a transaction changes the document.
func (s *State) DocVersion() uint64 { return s.docVersion }

// ConfigVersion increments every time a transaction changes the configuration.
func (s *State) ConfigVersion() uint64 { return s.conf.version }

// LineAt returns the document line containing off.
func (s *State) LineAt(off int) buffer.Line { return s.doc.LineAt(off) }

// TransactionSpec describes one part of a transaction.
type TransactionSpec struct {
	// Changes address the document produced by the preceding specs.
	Changes []buffer.Edit
	// Selection, if set, replaces the selection. It addresses the document
	// after Changes.
	Selection *buffer.Selection
	// Effects address the document after Changes. They are mapped through
	// the changes of later specs.
	Effects []Effect
	// AppendConfig installs additional extensions.
	AppendConfig []Extension
	// UserEvent tags the transaction, e.g. "input.type" or "select.pointer".
	UserEvent string
}

// Update builds a transaction from specs applied in order. On error no
// transaction is produced and s is unaffected.
func (s *State) Update(specs ...TransactionSpec) (tr *Transaction, err error) {
	doc := s.doc
	changes := buffer.EmptyChangeSet(doc.Len())
	var (
		sel       *buffer.Selection
		effects   []Effect
		appended  []Extension
		userEvent string
	)

	for i, spec := range specs {
		cs, err := buffer.NewChangeSet(doc.Len(), spec.Changes...)
		if err != nil {
			return nil, fmt.Errorf("spec %d: %w: %w", i, ErrInvalidChange, err)
		}
		next, err := cs.Apply(doc)
		if err != nil {
			return nil, fmt.Errorf("spec %d: %w: %w", i, ErrInvalidChange, err)
		}
		doc = next
		if !cs.Empty() {
			effects = mapEffects(effects, cs)
			if sel != nil {
				mapped := sel.Map(cs)
				sel = &mapped
			}
			changes = changes.Then(cs)
		}
		if spec.Selection != nil {
			clamped := spec.Selection.Clamp(doc.Len())
			sel = &clamped
		}
		effects = append(effects, spec.Effects...)
		appended = append(appended, spec.AppendConfig...)
		if spec.UserEvent != "" {
			userEvent = spec.UserEvent
		}
	}

	tr = &Transaction{
		start:     s,
		changes:   changes,
		newDoc:    doc,
		selection: sel,
		effects:   effects,
		userEvent: userEvent,
	}

	conf := s.conf
	if len(appended) > 0 {
		exts := make([]Extension, 0, len(conf.exts)+len(appended))
		exts = append(exts, conf.exts...)
		exts = append(exts, appended...)
		conf = resolve(exts, conf.version+1)
		tr.reconfigured = true
	}

	next := &State{
		doc:        doc,
		sel:        tr.NewSelection(),
		conf:       conf,
		docVersion: s.docVersion,
	}
	if tr.DocChanged() {
		next.docVersion++
	}

	defer func() {
		if r := recover(); r != nil {
			tr = nil
			err = fmt.Errorf("%w: %v", ErrFieldUpdate, r)
		}
	}()
	next.values = make([]any, len(conf.fields))
	for i, f := range conf.fields {
		var prev any
		if idx, ok := s.conf.fieldIndex[f.fieldID()]; ok {
			prev = s.values[idx]
		} else {
			prev = f.create(s)
		}
		next.values[i] = f.update(prev, tr)
	}
	tr.state = next
	return tr, nil
}

// Transaction is one atomic step from a start state to a new state.
type Transaction struct {
	start        *State
	state        *State
	changes      buffer.ChangeSet
	newDoc       buffer.Doc
	selection    *buffer.Selection
	effects      []Effect
	userEvent    string
	reconfigured bool
}

// StartState returns the state the transaction was built from.
func (tr *Transaction) StartState() *State { return tr.start }

// State returns the state produced by the transaction. It is nil while
// fields are being updated.
func (tr *Transaction) State() *State { return tr.state }

// Changes returns the combined document changes.
func (tr *Transaction) Changes() buffer.ChangeSet { return tr.changes }

func (tr *Transaction) DocChanged() bool { return !tr.changes.Empty() }

// NewDoc returns the document after the transaction.
func (tr *Transaction) NewDoc() buffer.Doc { return tr.newDoc }

// Selection returns the selection set explicitly by the transaction.
func (tr *Transaction) Selection() (buffer.Selection, bool) {
	if tr.selection == nil {
		return buffer.Selection{}, false
	}
	return *tr.selection, true
}

// NewSelection returns the selection after the transaction: the explicit one
// when set, otherwise the start selection mapped through the changes.
func (tr *Transaction) NewSelection() buffer.Selection {
	if tr.selection != nil {
		return *tr.selection
	}
	return tr.start.sel.Map(tr.changes)
}

// Effects returns the transaction's effects in order.
func (tr *Transaction) Effects() []Effect { return tr.effects }

// Reconfigured reports whether the transaction installed extensions.
func (tr *Transaction) Reconfigured() bool { return tr.reconfigured }

func (tr *Transaction) UserEvent() string { return tr.userEvent }

// IsUserEvent reports whether the transaction's user event is event or a
// dot-separated refinement of it ("select" matches "select.pointer").
func (tr *Transaction) IsUserEvent(event string) bool {
	if event == "" || tr.userEvent == "" {
		return false
	}
	return tr.userEvent == event || strings.HasPrefix(tr.userEvent, event+".")
}
