package state

// Facet collects values of type In contributed by any number of extensions
// and combines them into one Out.
type Facet[In, Out any] struct {
	id      uint64
	combine func(values []In) Out
}

// DefineFacet defines a facet. combine receives the contributed values in
// installation order and may be called with none.
func DefineFacet[In, Out any](combine func(values []In) Out) *Facet[In, Out] {
	return &Facet[In, Out]{id: newID(), combine: combine}
}

// Of returns an extension contributing v to the facet.
func (f *Facet[In, Out]) Of(v In) Extension {
	return facetValue[In, Out]{facet: f, value: v}
}

// Read combines the values contributed to the facet in s.
func (f *Facet[In, Out]) Read(s *State) Out {
	var raw []any
	if s != nil && s.conf != nil {
		raw = s.conf.facets[f.id]
	}
	values := make([]In, 0, len(raw))
	for _, v := range raw {
		values = append(values, v.(In))
	}
	return f.combine(values)
}

type facetValue[In, Out any] struct {
	facet *Facet[In, Out]
	value In
}

func (v facetValue[In, Out]) install(b *configBuilder) {
	b.addFacetValue(v.facet.id, v.value)
}
