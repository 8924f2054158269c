package editor

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/furl/buffer"
	"github.com/iw2rmb/furl/fold"
	"github.com/iw2rmb/furl/state"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m = m.SetSize(10, 1)

	m = press(m, keyRight)
	if len(events) != 1 || events[0].Selection.Primary().Head != 1 {
		t.Fatalf("after right: got %+v, want one event at head 1", events)
	}

	m = press(m, keyRight, keyRight)
	if got, want := len(events), 2; got != want {
		t.Fatalf("moving past the end: got %d events, want %d", got, want)
	}

	m = press(m, typeRunes("c"))
	if got, want := len(events), 3; got != want {
		t.Fatalf("after typing: got %d events, want %d", got, want)
	}
	ev := events[2]
	if ev.Text != "abc" || ev.DocVersion != m.State().DocVersion() {
		t.Fatalf("typing event: got text %q version %d", ev.Text, ev.DocVersion)
	}
	if got, want := ev.Cursor, (buffer.Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("typing event cursor: got %+v, want %+v", got, want)
	}

	m = settle(m)
	if got, want := len(events), 3; got != want {
		t.Fatalf("idle update: got %d events, want %d", got, want)
	}
}

func TestOnChange_ReportsRowColSelection(t *testing.T) {
	var last ChangeEvent
	m := New(Config{Text: "ab\ncd", OnChange: func(ev ChangeEvent) { last = ev }})
	m = dispatchSelection(t, m, buffer.NewSelection(0, buffer.SelRange{Anchor: 4, Head: 1}))

	want := buffer.Range{Start: buffer.Pos{Row: 0, Col: 1}, End: buffer.Pos{Row: 1, Col: 1}}
	if last.Selected != want {
		t.Fatalf("selected: got %+v, want %+v", last.Selected, want)
	}
	if got, want := last.Cursor, (buffer.Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestOnChange_ReportsFolds(t *testing.T) {
	var events []ChangeEvent
	m := newOutline(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = m.SetSize(20, 5)

	m = press(m, keyToggle)
	if len(events) != 1 {
		t.Fatalf("events: got %d, want 1", len(events))
	}
	if got, want := events[0].Folds, []fold.Range{outlineFold}; !equalRanges(got, want) {
		t.Fatalf("folds: got %v, want %v", got, want)
	}

	// FoldCode on an already folded line does nothing new.
	m.Run(fold.FoldCode)
	m = settle(m)
	if len(events) != 1 {
		t.Fatalf("repeated fold: got %d events, want 1", len(events))
	}
}

func TestOnChange_ExternalDispatchIsReported(t *testing.T) {
	var events []ChangeEvent
	m := newOutline(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	if err := m.Dispatch(state.TransactionSpec{
		Effects:      []state.Effect{fold.FoldEffect.Of(outlineFold)},
		AppendConfig: []state.Extension{fold.Extension()},
	}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("events before update: got %d, want 0", len(events))
	}
	m = settle(m)
	if len(events) != 1 {
		t.Fatalf("events after update: got %d, want 1", len(events))
	}
}

func TestSession_LogsTransactions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newOutline(Config{Logger: zap.New(core)})
	m = m.SetSize(20, 5)

	m = press(m, keyToggle)

	applied := logs.FilterMessage("transaction applied").All()
	if len(applied) != 1 {
		t.Fatalf("applied entries: got %d, want 1", len(applied))
	}
	fields := applied[0].ContextMap()
	if got, want := fields["folds"], int64(1); got != want {
		t.Fatalf("folds field: got %v, want %v", got, want)
	}
	if got, want := fields["reconfigured"], true; got != want {
		t.Fatalf("reconfigured field: got %v, want %v", got, want)
	}
}
