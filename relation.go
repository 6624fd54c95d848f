package mojolib

// Relation is a many-to-one mapping: each child has at most one parent, a
// parent may have any number of children. Internally it keeps a
// child->parent Map and a parent->child MultiMap cross-consistent through
// every mutation. Viewed as an AbstractSet, a Relation's elements are its
// children only — a parent with no outgoing edge of its own is not itself
// a member unless it is also someone's child.
//
// Ported from the original child->parent/parent->child pairing, with one
// deliberate correction: InsertChildParent rolls back the child-map
// insert if the multimap insert subsequently fails, so a child is never
// left without its reverse edge.
type Relation[K Key] struct {
	childToParent *Map[K, K]
	parentToChild *MultiMap[K, K]
}

// NewRelation constructs and creates a Relation in one step. Options
// configure the child->parent map; the parent->child multimap is sized
// and policy-matched to the same Config (an allocator or fixed buffer
// passed via opts is map-slot-shaped and cannot be shared with the
// multimap's differently-shaped slot, so only the Config carries over).
func NewRelation[K Key](opts ...Option[mapSlot[K, K]]) *Relation[K] {
	resolved := resolveOptions(opts)
	r := &Relation[K]{
		childToParent: NewMap[K, K](opts...),
		parentToChild: NewMultiMap[K, K](WithConfig[pair[K, K]](resolved.config)),
	}
	return r
}

func (r *Relation[K]) GetStatus() Status {
	if status := r.childToParent.GetStatus(); status != StatusOK {
		return status
	}
	return r.parentToChild.GetStatus()
}

func (r *Relation[K]) Destroy() {
	r.childToParent.Destroy()
	r.parentToChild.Destroy()
}

func (r *Relation[K]) Reset() {
	r.childToParent.Reset()
	r.parentToChild.Reset()
}

// InsertChildParent records that child's parent is parent. If parent is
// hash-null this is equivalent to RemoveChild(child). A hash-null child is
// an invalid-argument error. On success the cross-invariant holds: the
// child-map and multimap agree on every (child, parent) edge.
func (r *Relation[K]) InsertChildParent(child, parent K) Status {
	if parent.IsHashNull() {
		return r.RemoveChild(child)
	}
	if child.IsHashNull() {
		return StatusInvalidArguments
	}

	r.RemoveChild(child)

	if status := r.childToParent.Insert(child, parent); status != StatusOK {
		return status
	}
	if status := r.parentToChild.Insert(parent, child); status != StatusOK {
		r.childToParent.Remove(child)
		return status
	}
	return StatusOK
}

// RemoveChild drops child's relation with its parent, if any.
func (r *Relation[K]) RemoveChild(child K) Status {
	if child.IsHashNull() {
		return StatusNotFound
	}
	oldParent, status := r.childToParent.Remove(child)
	if status != StatusOK {
		return StatusNotFound
	}
	return r.parentToChild.RemoveOne(oldParent, child)
}

// RemoveParent drops every relation in which parent is the parent,
// including parent's entry in the multimap.
func (r *Relation[K]) RemoveParent(parent K) Status {
	if parent.IsHashNull() {
		return StatusNotFound
	}
	for i := r.parentToChild.FirstIndexOf(parent); r.parentToChild.IndexValidOf(parent, i); i = r.parentToChild.NextIndexOf(parent, i) {
		child := r.parentToChild.ValueAt(i)
		r.childToParent.Remove(child)
	}
	return r.parentToChild.RemoveAll(parent)
}

// FindParent returns child's parent, or the not-found sentinel.
func (r *Relation[K]) FindParent(child K) (K, bool) {
	return r.childToParent.Find(child)
}

// Contains reports whether child has a parent.
func (r *Relation[K]) Contains(child K) bool {
	return r.childToParent.Contains(child)
}

// ContainsParent reports whether parent has at least one child.
func (r *Relation[K]) ContainsParent(parent K) bool {
	return r.parentToChild.Contains(parent)
}

func (r *Relation[K]) Update() Status {
	if status := r.childToParent.Update(); status != StatusOK {
		return status
	}
	return r.parentToChild.Update()
}

// Count returns the number of child->parent relations.
func (r *Relation[K]) Count() int { return r.childToParent.Count() }

// --- cursor over children (elements) ---

func (r *Relation[K]) FirstIndex() int             { return r.childToParent.FirstIndex() }
func (r *Relation[K]) NextIndex(index int) int     { return r.childToParent.NextIndex(index) }
func (r *Relation[K]) IndexValid(index int) bool   { return r.childToParent.IndexValid(index) }
func (r *Relation[K]) KeyAt(index int) K           { return r.childToParent.KeyAt(index) }

// --- cursor over children of a given parent ---

func (r *Relation[K]) FirstIndexOf(parent K) int           { return r.parentToChild.FirstIndexOf(parent) }
func (r *Relation[K]) NextIndexOf(parent K, index int) int { return r.parentToChild.NextIndexOf(parent, index) }
func (r *Relation[K]) IndexValidOf(parent K, index int) bool {
	return r.parentToChild.IndexValidOf(parent, index)
}
func (r *Relation[K]) ValueAt(index int) K { return r.parentToChild.ValueAt(index) }

// --- AbstractSet conformance: elements are children only ---

func (r *Relation[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	for i := r.FirstIndex(); r.IndexValid(i); i = r.NextIndex(i) {
		key := r.KeyAt(i)
		if limit == nil || limit.Contains(key) {
			sink.Push(key)
		}
	}
}

func (r *Relation[K]) EnumerationCost() int { return r.Count() }

// ChangeCount sums both sub-containers' change counts: either the
// child-map or the parent-multimap mutating is a relevant mutation for a
// Relation-shaped cache key.
func (r *Relation[K]) ChangeCount() int {
	return r.childToParent.ChangeCount() + r.parentToChild.ChangeCount()
}
