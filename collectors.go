package mojolib

// SetCollector pushes enumerated keys into a Set, deduplicating them. This
// is the intended sink for operators whose enumeration may yield
// duplicates (Union, DirectClosedDeep, InverseClosedDeep).
type SetCollector[K Key] struct {
	Set *Set[K]
}

func (c SetCollector[K]) Push(k K) { c.Set.Insert(k) }

// CountCollector counts pushes without storing anything, useful for
// computing an EnumerationCost for a virtual set cheaply.
type CountCollector[K Key] struct {
	Count int
}

func (c *CountCollector[K]) Push(k K) { c.Count++ }

// SliceCollector appends every pushed key to Slice, in enumeration order.
type SliceCollector[K Key] struct {
	Slice []K
}

func (c *SliceCollector[K]) Push(k K) { c.Slice = append(c.Slice, k) }

// FuncCollector adapts a plain func(K) into a Collector, the escape hatch
// for callers who don't want to define a one-method type.
type FuncCollector[K Key] func(K)

func (f FuncCollector[K]) Push(k K) { f(k) }
