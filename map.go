package mojolib

// mapSlot is a (key, value) pair slot. A slot is empty iff key.IsHashNull().
type mapSlot[K Key, V any] struct {
	key   K
	value V
}

// Map is a one-to-one hash table: the set engine specialized to carry a
// value alongside each key. Ported from the same probing/resize/fix-up
// algorithm as Set, generalized to a (key, value) slot.
type Map[K Key, V any] struct {
	alloc    Allocator[mapSlot[K, V]]
	slots    []mapSlot[K, V]
	notFound V
	active   int
	table    int
	change   int
	status   Status

	allocMin   int
	tableMin   int
	growAt     int
	shrinkAt   int
	autoGrow   bool
	autoShrink bool
	dynamic    bool
}

// NewMap constructs and creates a Map in one step.
func NewMap[K Key, V any](opts ...Option[mapSlot[K, V]]) *Map[K, V] {
	m := &Map[K, V]{status: StatusNotInitialized}
	m.Create(opts...)
	return m
}

func (m *Map[K, V]) Create(opts ...Option[mapSlot[K, V]]) Status {
	o := resolveOptions(opts)
	if m.status != StatusNotInitialized {
		m.status = StatusDoubleInitialized
		return m.status
	}
	if !o.config.valid() {
		m.status = StatusInvalidArguments
		return m.status
	}

	m.status = StatusOK
	m.allocMin = o.config.AllocCountMin
	m.tableMin = o.config.TableCountMin
	m.growAt = o.config.GrowThreshold
	m.shrinkAt = o.config.ShrinkThreshold
	m.autoGrow = o.config.AutoGrow
	m.autoShrink = o.config.AutoShrink

	if o.fixed != nil {
		m.slots = o.fixed
		m.active = 0
		m.dynamic = false
		if len(o.fixed) < m.tableMin {
			m.status = StatusCouldNotAlloc
			return m.status
		}
		m.table = m.tableMin
		return m.status
	}

	m.alloc = o.alloc
	m.dynamic = o.config.DynamicAlloc
	m.resize(m.tableMin, max(m.allocMin, m.tableMin))
	if m.slots == nil {
		m.status = StatusCouldNotAlloc
	}
	return m.status
}

func (m *Map[K, V]) Destroy() {
	if m.alloc != nil {
		m.resize(0, 0)
	}
	notFound := m.notFound
	*m = Map[K, V]{status: StatusNotInitialized, notFound: notFound}
}

func (m *Map[K, V]) Reset() {
	for i := range m.slots[:m.table] {
		m.slots[i] = mapSlot[K, V]{}
	}
	m.active = 0
	m.change++
	m.resize(m.tableMin, max(m.allocMin, m.tableMin))
	m.checkInvariants()
}

// SetNotFoundValue configures the sentinel value Find and Remove return
// when a key is absent. Defaults to V's zero value.
func (m *Map[K, V]) SetNotFoundValue(v V) { m.notFound = v }

// Insert writes (key, value), overwriting the value if key already exists.
// When the table is full after any auto-grow, it returns
// StatusCouldNotAlloc without writing, even if key already exists.
func (m *Map[K, V]) Insert(key K, value V) Status {
	if m.status != StatusOK {
		return m.status
	}
	if key.IsHashNull() {
		return StatusInvalidArguments
	}
	m.autoGrowNow()
	if m.active >= m.table {
		return StatusCouldNotAlloc
	}
	index := m.findEmptyOrMatching(key)
	if m.slots[index].key.IsHashNull() {
		m.slots[index] = mapSlot[K, V]{key: key, value: value}
		m.active++
	} else {
		m.slots[index].value = value
	}
	m.change++
	m.checkInvariants()
	return StatusOK
}

// Remove deletes key, returning the value it held (or the not-found
// sentinel) and the resulting status.
func (m *Map[K, V]) Remove(key K) (V, Status) {
	if m.status != StatusOK {
		return m.notFound, m.status
	}
	if key.IsHashNull() {
		return m.notFound, StatusNotFound
	}
	index := m.findEmptyOrMatching(key)
	if m.slots[index].key != key {
		return m.notFound, StatusNotFound
	}
	value := m.slots[index].value
	m.removeAt(index)
	m.change++
	m.autoShrinkNow()
	m.checkInvariants()
	return value, StatusOK
}

// Find returns the value associated with key, or the not-found sentinel.
func (m *Map[K, V]) Find(key K) (V, bool) {
	if m.status != StatusOK || key.IsHashNull() {
		return m.notFound, false
	}
	index := m.findEmptyOrMatching(key)
	if m.slots[index].key != key {
		return m.notFound, false
	}
	return m.slots[index].value, true
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

func (m *Map[K, V]) Update() Status {
	if m.status != StatusOK {
		return m.status
	}
	m.grow()
	m.shrink()
	return StatusOK
}

func (m *Map[K, V]) GetStatus() Status { return m.status }
func (m *Map[K, V]) Count() int        { return m.active }

// --- cursor protocol ---

func (m *Map[K, V]) FirstIndex() int { return m.NextIndex(-1) }

func (m *Map[K, V]) NextIndex(index int) int {
	for i := index + 1; i < m.table; i++ {
		if !m.slots[i].key.IsHashNull() {
			return i
		}
	}
	return m.table
}

func (m *Map[K, V]) IndexValid(index int) bool {
	return m.status == StatusOK && index < m.table
}

func (m *Map[K, V]) KeyAt(index int) K   { return m.slots[index].key }
func (m *Map[K, V]) ValueAt(index int) V { return m.slots[index].value }
func (m *Map[K, V]) KeyValueAt(index int) (K, V) {
	return m.slots[index].key, m.slots[index].value
}

// --- AbstractSet conformance: the map viewed as the set of its keys ---

func (m *Map[K, V]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	for i := m.FirstIndex(); m.IndexValid(i); i = m.NextIndex(i) {
		key := m.KeyAt(i)
		if limit == nil || limit.Contains(key) {
			sink.Push(key)
		}
	}
}

func (m *Map[K, V]) EnumerationCost() int { return m.Count() }
func (m *Map[K, V]) ChangeCount() int     { return m.change }

// checkInvariants re-derives the occupied-slot count and confirms every
// occupied key's value is reachable via Find. Gated by invariants.
func (m *Map[K, V]) checkInvariants() {
	if !invariants {
		return
	}
	occupied := 0
	for i := 0; i < m.table; i++ {
		if !m.slots[i].key.IsHashNull() {
			occupied++
			_, ok := m.Find(m.slots[i].key)
			assertInvariant(ok, "map: occupied key at slot %d not found by Find", i)
		}
	}
	assertInvariant(occupied == m.active, "map: active=%d but %d slots occupied", m.active, occupied)
}

// --- internals ---

func (m *Map[K, V]) findEmptyOrMatching(key K) int {
	start := int(key.Hash() % uint64(m.table))
	for i := start; i < m.table; i++ {
		if m.slots[i].key.IsHashNull() || m.slots[i].key == key {
			return i
		}
	}
	for i := 0; i < start; i++ {
		if m.slots[i].key.IsHashNull() || m.slots[i].key == key {
			return i
		}
	}
	return 0
}

func (m *Map[K, V]) reinsert(index int) {
	newIndex := m.findEmptyOrMatching(m.slots[index].key)
	if newIndex != index {
		m.slots[newIndex] = m.slots[index]
		m.slots[index] = mapSlot[K, V]{}
	}
}

func (m *Map[K, V]) removeAt(index int) {
	m.slots[index] = mapSlot[K, V]{}
	m.active--

	for i := index + 1; i < m.table; i++ {
		if m.slots[i].key.IsHashNull() {
			return
		}
		m.reinsert(i)
	}
	for i := 0; i < index; i++ {
		if m.slots[i].key.IsHashNull() {
			return
		}
		m.reinsert(i)
	}
}

func (m *Map[K, V]) grow() {
	if m.active*100 >= m.table*m.growAt {
		newTable := m.table * 2
		newCap := max(len(m.slots), newTable)
		if !m.dynamic {
			newCap = len(m.slots)
			newTable = min(newTable, newCap)
		}
		m.resize(newTable, newCap)
	}
}

func (m *Map[K, V]) shrink() {
	if m.table > m.tableMin && m.active*100 < m.table*m.shrinkAt {
		newTable := max(m.table/2, m.tableMin)
		newCap := max(newTable, m.allocMin)
		if !m.dynamic {
			newCap = len(m.slots)
		}
		m.resize(newTable, newCap)
	}
}

func (m *Map[K, V]) autoGrowNow() {
	if m.autoGrow {
		m.grow()
	}
}

func (m *Map[K, V]) autoShrinkNow() {
	if m.autoShrink {
		m.shrink()
	}
}

func (m *Map[K, V]) resize(newTable, newCap int) {
	switch {
	case m.alloc != nil && len(m.slots) != newCap:
		var newSlots []mapSlot[K, V]
		if newCap > 0 {
			newSlots = m.alloc.Allocate(newCap, "mojolib.Map")
			if newSlots == nil {
				return
			}
		}
		oldSlots := m.slots
		oldTable := m.table

		m.table = newTable
		m.active = 0
		m.slots = newSlots

		if oldSlots != nil && m.slots != nil {
			for i := 0; i < oldTable; i++ {
				if !oldSlots[i].key.IsHashNull() {
					m.Insert(oldSlots[i].key, oldSlots[i].value)
				}
			}
		}
		if oldSlots != nil {
			m.alloc.Free(oldSlots)
		}

	case newTable < m.table:
		oldTable := m.table
		m.table = newTable
		for i := 0; i < oldTable; i++ {
			if !m.slots[i].key.IsHashNull() {
				m.reinsert(i)
			}
		}

	case newTable > m.table:
		oldTable := m.table
		m.table = newTable
		for i := 0; i < oldTable; i++ {
			if !m.slots[i].key.IsHashNull() {
				m.reinsert(i)
			}
		}
		for i := oldTable; i < newTable; i++ {
			if m.slots[i].key.IsHashNull() {
				break
			}
			m.reinsert(i)
		}
	}
}
