package mojolib

// Set is a key-only open-addressed hash table, also usable as an
// AbstractSet. Zero value is not ready for use; call NewSet to construct
// one. Ported from the probing/resize/fix-up algorithm of the original
// key-only hash table this library's set engine is specialized from,
// adapted to Go generics and slice-backed storage.
type Set[K Key] struct {
	alloc  Allocator[K]
	keys   []K
	active int // number of keys in play
	table  int // portion of keys currently used for hashing
	change int
	status Status

	allocMin   int
	tableMin   int
	growAt     int
	shrinkAt   int
	autoGrow   bool
	autoShrink bool
	dynamic    bool
}

// NewSet constructs and creates a Set in one step. The returned Set's
// Status reflects whether construction succeeded.
func NewSet[K Key](opts ...Option[K]) *Set[K] {
	s := &Set[K]{status: StatusNotInitialized}
	s.Create(opts...)
	return s
}

// Create initializes s after the zero value or after Destroy. Calling
// Create twice without an intervening Destroy is an error.
func (s *Set[K]) Create(opts ...Option[K]) Status {
	o := resolveOptions(opts)
	if s.status != StatusNotInitialized {
		s.status = StatusDoubleInitialized
		return s.status
	}
	if !o.config.valid() {
		s.status = StatusInvalidArguments
		return s.status
	}

	s.status = StatusOK
	s.allocMin = o.config.AllocCountMin
	s.tableMin = o.config.TableCountMin
	s.growAt = o.config.GrowThreshold
	s.shrinkAt = o.config.ShrinkThreshold
	s.autoGrow = o.config.AutoGrow
	s.autoShrink = o.config.AutoShrink

	if o.fixed != nil {
		s.keys = o.fixed
		s.active = 0
		s.dynamic = false
		if len(o.fixed) < s.tableMin {
			s.status = StatusCouldNotAlloc
			return s.status
		}
		s.table = s.tableMin
		return s.status
	}

	s.alloc = o.alloc
	s.dynamic = o.config.DynamicAlloc
	s.resize(s.tableMin, max(s.allocMin, s.tableMin))
	if s.keys == nil {
		s.status = StatusCouldNotAlloc
	}
	return s.status
}

// Destroy frees any owned buffer and returns s to the uninitialized state.
func (s *Set[K]) Destroy() {
	if s.alloc != nil {
		s.resize(0, 0)
	}
	*s = Set[K]{status: StatusNotInitialized}
}

// Reset empties all slots and shrinks to minimum capacity.
func (s *Set[K]) Reset() {
	for i := range s.keys[:s.table] {
		var zero K
		s.keys[i] = zero
	}
	s.active = 0
	s.change++
	s.resize(s.tableMin, max(s.allocMin, s.tableMin))
	s.checkInvariants()
}

// Insert adds key to the set. Inserting a key already present is a no-op.
func (s *Set[K]) Insert(key K) Status {
	if s.status != StatusOK {
		return s.status
	}
	if key.IsHashNull() {
		return StatusInvalidArguments
	}
	s.autoGrowNow()
	if s.active >= s.table {
		return StatusCouldNotAlloc
	}
	index := s.findEmptyOrMatching(key)
	if s.keys[index].IsHashNull() {
		s.keys[index] = key
		s.active++
		s.change++
	}
	s.checkInvariants()
	return StatusOK
}

// Remove deletes key from the set.
func (s *Set[K]) Remove(key K) Status {
	if s.status != StatusOK {
		return s.status
	}
	if key.IsHashNull() {
		return StatusNotFound
	}
	if s.removeOne(key) {
		s.change++
		s.autoShrinkNow()
		s.checkInvariants()
		return StatusOK
	}
	return StatusNotFound
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	if s.status != StatusOK || key.IsHashNull() {
		return false
	}
	index := s.findEmptyOrMatching(key)
	return s.keys[index] == key
}

// Update performs a deferred grow/shrink pass; only useful when auto-grow
// and auto-shrink are disabled.
func (s *Set[K]) Update() Status {
	if s.status != StatusOK {
		return s.status
	}
	s.grow()
	s.shrink()
	return StatusOK
}

// GetStatus returns the container's status.
func (s *Set[K]) GetStatus() Status { return s.status }

// Count returns the number of keys currently in the set.
func (s *Set[K]) Count() int { return s.active }

// --- cursor protocol ---

func (s *Set[K]) FirstIndex() int { return s.NextIndex(-1) }

func (s *Set[K]) NextIndex(index int) int {
	for i := index + 1; i < s.table; i++ {
		if !s.keys[i].IsHashNull() {
			return i
		}
	}
	return s.table
}

func (s *Set[K]) IndexValid(index int) bool {
	return s.status == StatusOK && index < s.table
}

func (s *Set[K]) KeyAt(index int) K { return s.keys[index] }

// --- AbstractSet conformance ---

func (s *Set[K]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	for i := s.FirstIndex(); s.IndexValid(i); i = s.NextIndex(i) {
		key := s.KeyAt(i)
		if limit == nil || limit.Contains(key) {
			sink.Push(key)
		}
	}
}

func (s *Set[K]) EnumerationCost() int { return s.Count() }

func (s *Set[K]) ChangeCount() int { return s.change }

// checkInvariants re-derives the occupied-slot count and confirms every
// occupied key is reachable via Contains. Gated by invariants; a no-op
// build pays nothing for it.
func (s *Set[K]) checkInvariants() {
	if !invariants {
		return
	}
	occupied := 0
	for i := 0; i < s.table; i++ {
		if !s.keys[i].IsHashNull() {
			occupied++
			assertInvariant(s.Contains(s.keys[i]), "set: occupied key at slot %d not found by Contains", i)
		}
	}
	assertInvariant(occupied == s.active, "set: active=%d but %d slots occupied", s.active, occupied)
}

// --- internals ---

func (s *Set[K]) findEmptyOrMatching(key K) int {
	start := int(key.Hash() % uint64(s.table))
	for i := start; i < s.table; i++ {
		if s.keys[i].IsHashNull() || s.keys[i] == key {
			return i
		}
	}
	for i := 0; i < start; i++ {
		if s.keys[i].IsHashNull() || s.keys[i] == key {
			return i
		}
	}
	return 0
}

func (s *Set[K]) reinsert(index int) {
	newIndex := s.findEmptyOrMatching(s.keys[index])
	if newIndex != index {
		s.keys[newIndex] = s.keys[index]
		var zero K
		s.keys[index] = zero
	}
}

func (s *Set[K]) removeOne(key K) bool {
	if key.IsHashNull() {
		return false
	}
	index := s.findEmptyOrMatching(key)
	if s.keys[index] != key {
		return false
	}
	var zero K
	s.keys[index] = zero
	s.active--

	for i := index + 1; i < s.table; i++ {
		if s.keys[i].IsHashNull() {
			return true
		}
		s.reinsert(i)
	}
	for i := 0; i < index; i++ {
		if s.keys[i].IsHashNull() {
			return true
		}
		s.reinsert(i)
	}
	return true
}

func (s *Set[K]) grow() {
	if s.active*100 >= s.table*s.growAt {
		newTable := s.table * 2
		newCap := max(len(s.keys), newTable)
		if !s.dynamic {
			newCap = len(s.keys)
			newTable = min(newTable, newCap)
		}
		s.resize(newTable, newCap)
	}
}

func (s *Set[K]) shrink() {
	if s.table > s.tableMin && s.active*100 < s.table*s.shrinkAt {
		newTable := max(s.table/2, s.tableMin)
		newCap := max(newTable, s.allocMin)
		if !s.dynamic {
			newCap = len(s.keys)
		}
		s.resize(newTable, newCap)
	}
}

func (s *Set[K]) autoGrowNow() {
	if s.autoGrow {
		s.grow()
	}
}

func (s *Set[K]) autoShrinkNow() {
	if s.autoShrink {
		s.shrink()
	}
}

func (s *Set[K]) resize(newTable, newCap int) {
	switch {
	case s.alloc != nil && len(s.keys) != newCap:
		var newKeys []K
		if newCap > 0 {
			newKeys = s.alloc.Allocate(newCap, "mojolib.Set")
			if newKeys == nil {
				return
			}
		}
		oldKeys := s.keys
		oldTable := s.table

		s.table = newTable
		s.active = 0
		s.keys = newKeys

		if oldKeys != nil && s.keys != nil {
			for i := 0; i < oldTable; i++ {
				if !oldKeys[i].IsHashNull() {
					s.Insert(oldKeys[i])
				}
			}
		}
		if oldKeys != nil {
			s.alloc.Free(oldKeys)
		}

	case newTable < s.table:
		oldTable := s.table
		s.table = newTable
		for i := 0; i < oldTable; i++ {
			if !s.keys[i].IsHashNull() {
				s.reinsert(i)
			}
		}

	case newTable > s.table:
		oldTable := s.table
		s.table = newTable
		for i := 0; i < oldTable; i++ {
			if !s.keys[i].IsHashNull() {
				s.reinsert(i)
			}
		}
		for i := oldTable; i < newTable; i++ {
			if s.keys[i].IsHashNull() {
				break
			}
			s.reinsert(i)
		}
	}
}
