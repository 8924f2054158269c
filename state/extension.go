package state

import "sync/atomic"

var nextID atomic.Uint64

func newID() uint64 { return nextID.Add(1) }

// Extension is a unit of configuration installed into a State.
//
// Extensions are produced by fields (*Field), facets (Facet.Of) and Group.
type Extension interface {
	install(b *configBuilder)
}

// Group bundles extensions so they can be passed around as one.
func Group(exts ...Extension) Extension {
	return group(append([]Extension(nil), exts...))
}

type group []Extension

func (g group) install(b *configBuilder) {
	for _, ext := range g {
		if ext != nil {
			ext.install(b)
		}
	}
}

type configuration struct {
	version    uint64
	exts       []Extension
	fields     []fieldSlot
	fieldIndex map[uint64]int
	facets     map[uint64][]any
}

type configBuilder struct {
	fields     []fieldSlot
	fieldIndex map[uint64]int
	facets     map[uint64][]any
}

func (b *configBuilder) addField(f fieldSlot) {
	if _, ok := b.fieldIndex[f.fieldID()]; ok {
		return
	}
	b.fieldIndex[f.fieldID()] = len(b.fields)
	b.fields = append(b.fields, f)
}

func (b *configBuilder) addFacetValue(id uint64, v any) {
	b.facets[id] = append(b.facets[id], v)
}

func resolve(exts []Extension, version uint64) *configuration {
	b := &configBuilder{
		fieldIndex: make(map[uint64]int),
		facets:     make(map[uint64][]any),
	}
	group(exts).install(b)
	return &configuration{
		version:    version,
		exts:       exts,
		fields:     b.fields,
		fieldIndex: b.fieldIndex,
		facets:     b.facets,
	}
}
