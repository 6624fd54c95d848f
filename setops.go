package mojolib

// unionSet is the virtual set that contains an element iff any source
// does. Enumerate visits each source in turn and may yield duplicates;
// callers who care should collect into a SetCollector.
type unionSet[K Key] struct {
	sources []AbstractSet[K]
}

// Union returns the virtual set containing an element iff at least one of
// sources contains it.
func Union[K Key](sources ...AbstractSet[K]) AbstractSet[K] {
	return &unionSet[K]{sources: sources}
}

func (u *unionSet[K]) Contains(k K) bool {
	for _, s := range u.sources {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

func (u *unionSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	for _, s := range u.sources {
		s.Enumerate(sink, limit)
	}
}

func (u *unionSet[K]) EnumerationCost() int {
	cost := 0
	for _, s := range u.sources {
		cost += s.EnumerationCost()
	}
	return cost
}

func (u *unionSet[K]) ChangeCount() int {
	sum := 0
	for _, s := range u.sources {
		sum += s.ChangeCount()
	}
	return sum
}

// intersectionSet contains an element iff every source does. Enumerate
// drives from the cheapest source, using the rest of the sources (as a
// combined limit) to filter.
type intersectionSet[K Key] struct {
	sources []AbstractSet[K]
}

// Intersection returns the virtual set containing an element iff every
// source contains it.
func Intersection[K Key](sources ...AbstractSet[K]) AbstractSet[K] {
	return &intersectionSet[K]{sources: sources}
}

func (x *intersectionSet[K]) Contains(k K) bool {
	for _, s := range x.sources {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

func (x *intersectionSet[K]) driverIndex() int {
	best := 0
	bestCost := x.sources[0].EnumerationCost()
	for i := 1; i < len(x.sources); i++ {
		if c := x.sources[i].EnumerationCost(); c < bestCost {
			best = i
			bestCost = c
		}
	}
	return best
}

func (x *intersectionSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	if len(x.sources) == 0 {
		return
	}
	driver := x.driverIndex()
	rest := make([]AbstractSet[K], 0, len(x.sources)-1+boolToInt(limit != nil))
	for i, s := range x.sources {
		if i != driver {
			rest = append(rest, s)
		}
	}
	if limit != nil {
		rest = append(rest, limit)
	}
	var combined AbstractSet[K]
	switch len(rest) {
	case 0:
		combined = nil
	case 1:
		combined = rest[0]
	default:
		combined = &intersectionSet[K]{sources: rest}
	}
	x.sources[driver].Enumerate(sink, combined)
}

func (x *intersectionSet[K]) EnumerationCost() int {
	if len(x.sources) == 0 {
		return 0
	}
	return x.sources[x.driverIndex()].EnumerationCost()
}

func (x *intersectionSet[K]) ChangeCount() int {
	sum := 0
	for _, s := range x.sources {
		sum += s.ChangeCount()
	}
	return sum
}

// differenceSet contains an element iff a contains it and b does not.
type differenceSet[K Key] struct {
	a, b AbstractSet[K]
}

// Difference returns the virtual set a minus b.
func Difference[K Key](a, b AbstractSet[K]) AbstractSet[K] {
	return &differenceSet[K]{a: a, b: b}
}

func (d *differenceSet[K]) Contains(k K) bool {
	return d.a.Contains(k) && !d.b.Contains(k)
}

func (d *differenceSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	effective := AbstractSet[K](notSet[K]{d.b})
	if limit != nil {
		effective = &intersectionSet[K]{sources: []AbstractSet[K]{effective, limit}}
	}
	d.a.Enumerate(sink, effective)
}

func (d *differenceSet[K]) EnumerationCost() int { return d.a.EnumerationCost() }

func (d *differenceSet[K]) ChangeCount() int { return d.a.ChangeCount() + d.b.ChangeCount() }

// complementSet contains an element iff universe contains it and a does
// not.
type complementSet[K Key] struct {
	a, universe AbstractSet[K]
}

// Complement returns the virtual set of every element of universe not in a.
func Complement[K Key](a, universe AbstractSet[K]) AbstractSet[K] {
	return &complementSet[K]{a: a, universe: universe}
}

func (c *complementSet[K]) Contains(k K) bool {
	return c.universe.Contains(k) && !c.a.Contains(k)
}

func (c *complementSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	effective := AbstractSet[K](notSet[K]{c.a})
	if limit != nil {
		effective = &intersectionSet[K]{sources: []AbstractSet[K]{effective, limit}}
	}
	c.universe.Enumerate(sink, effective)
}

func (c *complementSet[K]) EnumerationCost() int { return c.universe.EnumerationCost() }

func (c *complementSet[K]) ChangeCount() int { return c.a.ChangeCount() + c.universe.ChangeCount() }

// notSet adapts a source into a limit that accepts exactly what the
// source rejects; used internally by Difference/Complement to express
// "not B" as a limit without requiring a public negation operator.
type notSet[K Key] struct {
	inner AbstractSet[K]
}

func (n notSet[K]) Contains(k K) bool { return !n.inner.Contains(k) }
func (n notSet[K]) Enumerate(Collector[K], AbstractSet[K]) {
	panic("mojolib: notSet is a filter-only limit, not enumerable")
}
func (n notSet[K]) EnumerationCost() int { return n.inner.EnumerationCost() }
func (n notSet[K]) ChangeCount() int     { return n.inner.ChangeCount() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
