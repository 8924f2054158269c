package state

// FieldSpec describes how a field value is created and updated.
type FieldSpec[T any] struct {
	// Create returns the initial value. When a field is installed by a
	// transaction, Create receives the transaction's start state and the value
	// is then passed through Update with that transaction.
	Create func(s *State) T
	// Update computes the value after tr. Nil keeps the value unchanged.
	Update func(value T, tr *Transaction) T
}

// Field is a piece of state recomputed on every transaction. *Field is an
// Extension; installing it more than once has no further effect.
type Field[T any] struct {
	id   uint64
	spec FieldSpec[T]
}

// DefineField defines a new field.
func DefineField[T any](spec FieldSpec[T]) *Field[T] {
	return &Field[T]{id: newID(), spec: spec}
}

// Get returns the field value in s. ok is false when the field is not
// installed.
func (f *Field[T]) Get(s *State) (value T, ok bool) {
	if s == nil || s.conf == nil {
		return value, false
	}
	idx, ok := s.conf.fieldIndex[f.id]
	if !ok {
		return value, false
	}
	return s.values[idx].(T), true
}

// Installed reports whether the field is part of the configuration of s.
func (f *Field[T]) Installed(s *State) bool {
	_, ok := f.Get(s)
	return ok
}

func (f *Field[T]) install(b *configBuilder) { b.addField(f) }

func (f *Field[T]) fieldID() uint64 { return f.id }

func (f *Field[T]) create(s *State) any {
	if f.spec.Create == nil {
		var zero T
		return zero
	}
	return f.spec.Create(s)
}

func (f *Field[T]) update(v any, tr *Transaction) any {
	if f.spec.Update == nil {
		return v
	}
	return f.spec.Update(v.(T), tr)
}

type fieldSlot interface {
	fieldID() uint64
	create(s *State) any
	update(v any, tr *Transaction) any
}
