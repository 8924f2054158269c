package state

import "github.com/iw2rmb/furl/buffer"

// Effect is a typed side-effect payload attached to a transaction.
type Effect struct {
	kind  effectKind
	value any
}

type effectKind interface {
	mapValue(v any, cs buffer.ChangeSet) (any, bool)
}

// EffectType identifies a kind of effect carrying values of type T.
type EffectType[T any] struct {
	mapFn func(v T, cs buffer.ChangeSet) (T, bool)
}

// DefineEffect defines an effect type. mapFn maps a value through document
// changes made later in the same transaction; returning false drops the
// effect. A nil mapFn keeps values unchanged.
func DefineEffect[T any](mapFn func(v T, cs buffer.ChangeSet) (T, bool)) *EffectType[T] {
	return &EffectType[T]{mapFn: mapFn}
}

// Of returns an effect of this type carrying v.
func (t *EffectType[T]) Of(v T) Effect {
	return Effect{kind: t, value: v}
}

// Value returns the payload of e when e has this type.
func (t *EffectType[T]) Value(e Effect) (v T, ok bool) {
	if e.kind != effectKind(t) {
		return v, false
	}
	return e.value.(T), true
}

func (t *EffectType[T]) mapValue(v any, cs buffer.ChangeSet) (any, bool) {
	if t.mapFn == nil {
		return v, true
	}
	return t.mapFn(v.(T), cs)
}

// Map maps e through cs. ok is false when the effect no longer applies.
func (e Effect) Map(cs buffer.ChangeSet) (Effect, bool) {
	if e.kind == nil || cs.Empty() {
		return e, e.kind != nil
	}
	v, ok := e.kind.mapValue(e.value, cs)
	if !ok {
		return Effect{}, false
	}
	return Effect{kind: e.kind, value: v}, true
}

func mapEffects(effects []Effect, cs buffer.ChangeSet) []Effect {
	if cs.Empty() || len(effects) == 0 {
		return effects
	}
	out := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if mapped, ok := e.Map(cs); ok {
			out = append(out, mapped)
		}
	}
	return out
}
