package mojolib

// directSet maps each element of source to its parent under r, one hop.
type directSet[K Key] struct {
	r      *Relation[K]
	source AbstractSet[K]
}

// Direct returns the virtual set of parents (one hop) of every element of
// source under r.
func Direct[K Key](r *Relation[K], source AbstractSet[K]) AbstractSet[K] {
	return &directSet[K]{r: r, source: source}
}

func (d *directSet[K]) Contains(k K) bool {
	found := false
	d.source.Enumerate(FuncCollector[K](func(child K) {
		if found {
			return
		}
		if parent, ok := d.r.FindParent(child); ok && parent == k {
			found = true
		}
	}), nil)
	return found
}

func (d *directSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	d.source.Enumerate(FuncCollector[K](func(child K) {
		parent, ok := d.r.FindParent(child)
		if !ok {
			return
		}
		if limit == nil || limit.Contains(parent) {
			sink.Push(parent)
		}
	}), nil)
}

func (d *directSet[K]) EnumerationCost() int { return d.source.EnumerationCost() }

func (d *directSet[K]) ChangeCount() int { return d.source.ChangeCount() + d.r.ChangeCount() }

// inverseSet maps each element of source (treated as parents) to the
// union of their children under r, one hop.
type inverseSet[K Key] struct {
	r      *Relation[K]
	source AbstractSet[K]
}

// Inverse returns the virtual set of children (one hop) of every element
// of source under r.
func Inverse[K Key](r *Relation[K], source AbstractSet[K]) AbstractSet[K] {
	return &inverseSet[K]{r: r, source: source}
}

func (n *inverseSet[K]) Contains(k K) bool {
	parent, ok := n.r.FindParent(k)
	return ok && n.source.Contains(parent)
}

func (n *inverseSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	n.source.Enumerate(FuncCollector[K](func(parent K) {
		for i := n.r.FirstIndexOf(parent); n.r.IndexValidOf(parent, i); i = n.r.NextIndexOf(parent, i) {
			child := n.r.ValueAt(i)
			if limit == nil || limit.Contains(child) {
				sink.Push(child)
			}
		}
	}), nil)
}

func (n *inverseSet[K]) EnumerationCost() int { return n.r.Count() }

func (n *inverseSet[K]) ChangeCount() int { return n.source.ChangeCount() + n.r.ChangeCount() }

// directClosedDeepSet is the transitive closure of Direct: for each
// element of source, walk its ancestor chain under r, emitting each
// non-null parent; an element with no parent is emitted itself. Ported
// from the original direct-closed-deep collector/Contains pair.
type directClosedDeepSet[K Key] struct {
	r      *Relation[K]
	source AbstractSet[K]
}

// DirectClosedDeep returns the transitive closure, under r.FindParent, of
// every element of source: every ancestor of every source element, plus
// any parentless source element itself.
func DirectClosedDeep[K Key](r *Relation[K], source AbstractSet[K]) AbstractSet[K] {
	return &directClosedDeepSet[K]{r: r, source: source}
}

func (d *directClosedDeepSet[K]) Contains(k K) bool {
	if d.isAncestorOfSource(k) {
		return true
	}
	return !d.r.Contains(k) && d.source.Contains(k)
}

// isAncestorOfSource reports whether k is a non-self ancestor of some
// element of source, i.e. some source element's parent chain passes
// through k.
func (d *directClosedDeepSet[K]) isAncestorOfSource(k K) bool {
	found := false
	d.source.Enumerate(FuncCollector[K](func(elem K) {
		if found {
			return
		}
		for p, ok := d.r.FindParent(elem); ok; p, ok = d.r.FindParent(p) {
			if p == k {
				found = true
				return
			}
		}
	}), nil)
	return found
}

func (d *directClosedDeepSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	d.source.Enumerate(FuncCollector[K](func(elem K) {
		parent, ok := d.r.FindParent(elem)
		if !ok {
			if limit == nil || limit.Contains(elem) {
				sink.Push(elem)
			}
			return
		}
		for ok {
			if limit == nil || limit.Contains(parent) {
				sink.Push(parent)
			}
			parent, ok = d.r.FindParent(parent)
		}
	}), nil)
}

func (d *directClosedDeepSet[K]) EnumerationCost() int {
	return d.source.EnumerationCost() + d.r.Count()
}

func (d *directClosedDeepSet[K]) ChangeCount() int {
	return d.source.ChangeCount() + d.r.ChangeCount()
}

// inverseClosedDeepSet is the symmetric transitive closure over
// descendants: every element of source, plus every descendant reachable
// by repeatedly following Inverse edges, at every depth, down to the
// leaves. Supplemented: the original sources only provided the
// direct-closed-deep (ancestor) closure; this descendant closure is
// authored from the spec's row for C12 ("direct/inverse, shallow/deep
// closures") and the symmetry with DirectClosedDeep.
type inverseClosedDeepSet[K Key] struct {
	r      *Relation[K]
	source AbstractSet[K]
}

// InverseClosedDeep returns every descendant, under r's parent->child
// edges, of every element of source, including source itself and every
// intermediate node on the way down to the leaves.
func InverseClosedDeep[K Key](r *Relation[K], source AbstractSet[K]) AbstractSet[K] {
	return &inverseClosedDeepSet[K]{r: r, source: source}
}

func (n *inverseClosedDeepSet[K]) walk(root K, sink Collector[K], limit AbstractSet[K]) {
	if limit == nil || limit.Contains(root) {
		sink.Push(root)
	}
	for i := n.r.FirstIndexOf(root); n.r.IndexValidOf(root, i); i = n.r.NextIndexOf(root, i) {
		child := n.r.ValueAt(i)
		n.walk(child, sink, limit)
	}
}

func (n *inverseClosedDeepSet[K]) Contains(k K) bool {
	if n.source.Contains(k) {
		return true
	}
	found := false
	n.source.Enumerate(FuncCollector[K](func(root K) {
		if found {
			return
		}
		if n.isDescendant(root, k) {
			found = true
		}
	}), nil)
	return found
}

func (n *inverseClosedDeepSet[K]) isDescendant(root, k K) bool {
	for i := n.r.FirstIndexOf(root); n.r.IndexValidOf(root, i); i = n.r.NextIndexOf(root, i) {
		child := n.r.ValueAt(i)
		if child == k || n.isDescendant(child, k) {
			return true
		}
	}
	return false
}

func (n *inverseClosedDeepSet[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	n.source.Enumerate(FuncCollector[K](func(root K) {
		n.walk(root, sink, limit)
	}), nil)
}

func (n *inverseClosedDeepSet[K]) EnumerationCost() int {
	return n.source.EnumerationCost() + n.r.Count()
}

func (n *inverseClosedDeepSet[K]) ChangeCount() int {
	return n.source.ChangeCount() + n.r.ChangeCount()
}
