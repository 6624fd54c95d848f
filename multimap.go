package mojolib

// pair is a (key, value) slot for MultiMap. A slot is empty iff
// key.IsHashNull().
type pair[K Key, V Nullable] struct {
	key   K
	value V
}

// MultiMap is a one-to-many hash table: any number of (key, value) pairs
// may share a key, distinct modulo pair equality. All pairs sharing a key
// occupy one contiguous wrap-around run (the "cluster invariant"), which
// RemoveAll/RemoveOne must preserve via bounded fix-up. Ported from
// MojoMultiMap's dual-probe, cluster-scan, FixUp algorithm.
type MultiMap[K Key, V Nullable] struct {
	alloc    Allocator[pair[K, V]]
	slots    []pair[K, V]
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

func NewMultiMap[K Key, V Nullable](opts ...Option[pair[K, V]]) *MultiMap[K, V] {
	m := &MultiMap[K, V]{status: StatusNotInitialized}
	m.Create(opts...)
	return m
}

func (m *MultiMap[K, V]) Create(opts ...Option[pair[K, V]]) Status {
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

func (m *MultiMap[K, V]) Destroy() {
	if m.alloc != nil {
		m.resize(0, 0)
	}
	notFound := m.notFound
	*m = MultiMap[K, V]{status: StatusNotInitialized, notFound: notFound}
}

func (m *MultiMap[K, V]) Reset() {
	for i := range m.slots[:m.table] {
		m.slots[i] = pair[K, V]{}
	}
	m.active = 0
	m.change++
	m.resize(m.tableMin, max(m.allocMin, m.tableMin))
	m.checkInvariants()
}

func (m *MultiMap[K, V]) SetNotFoundValue(v V) { m.notFound = v }

// Insert adds (key, value). A duplicate pair is a no-op.
func (m *MultiMap[K, V]) Insert(key K, value V) Status {
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
	index := m.findEmptyOrMatchingPair(key, value)
	if m.slots[index].key.IsHashNull() {
		m.slots[index] = pair[K, V]{key: key, value: value}
		m.active++
		m.change++
	}
	m.checkInvariants()
	return StatusOK
}

// RemoveAll removes every pair with the given key.
func (m *MultiMap[K, V]) RemoveAll(key K) Status {
	if m.status != StatusOK {
		return m.status
	}
	if key.IsHashNull() {
		return StatusNotFound
	}
	if m.removeAll(key) {
		m.change++
		m.autoShrinkNow()
		m.checkInvariants()
		return StatusOK
	}
	return StatusNotFound
}

// RemoveOne removes a single (key, value) pair.
func (m *MultiMap[K, V]) RemoveOne(key K, value V) Status {
	if m.status != StatusOK {
		return m.status
	}
	if key.IsHashNull() || value.IsHashNull() {
		return StatusNotFound
	}
	if m.removeOne(key, value) {
		m.change++
		m.autoShrinkNow()
		m.checkInvariants()
		return StatusOK
	}
	return StatusNotFound
}

// Find returns any one value associated with key.
func (m *MultiMap[K, V]) Find(key K) (V, bool) {
	if m.status != StatusOK || key.IsHashNull() {
		return m.notFound, false
	}
	index := m.findEmptyOrMatchingKey(key)
	if m.slots[index].key != key {
		return m.notFound, false
	}
	return m.slots[index].value, true
}

func (m *MultiMap[K, V]) Contains(key K) bool {
	if m.status != StatusOK || key.IsHashNull() {
		return false
	}
	index := m.findEmptyOrMatchingKey(key)
	return m.slots[index].key == key
}

func (m *MultiMap[K, V]) ContainsPair(key K, value V) bool {
	if m.status != StatusOK || key.IsHashNull() {
		return false
	}
	index := m.findEmptyOrMatchingPair(key, value)
	return m.slots[index].key == key && m.slots[index].value == value
}

func (m *MultiMap[K, V]) Update() Status {
	if m.status != StatusOK {
		return m.status
	}
	m.grow()
	m.shrink()
	return StatusOK
}

func (m *MultiMap[K, V]) GetStatus() Status { return m.status }
func (m *MultiMap[K, V]) Count() int        { return m.active }

// --- whole-table cursor: one index per distinct key ---

func (m *MultiMap[K, V]) FirstIndex() int { return m.NextIndex(-1) }

func (m *MultiMap[K, V]) NextIndex(index int) int {
	for i := index + 1; i < m.table; i++ {
		if !m.slots[i].key.IsHashNull() && m.isFirstInRun(i) {
			return i
		}
	}
	return m.table
}

func (m *MultiMap[K, V]) IndexValid(index int) bool {
	return m.status == StatusOK && index < m.table
}

// --- cluster cursor: every value for a given key ---

func (m *MultiMap[K, V]) FirstIndexOf(key K) int {
	if m.status != StatusOK || key.IsHashNull() {
		return m.table
	}
	index := m.findEmptyOrMatchingKey(key)
	if m.slots[index].key == key {
		return index
	}
	return m.table
}

func (m *MultiMap[K, V]) NextIndexOf(key K, index int) int {
	if m.status != StatusOK || key.IsHashNull() {
		return m.table
	}
	// The scan also stops on coming back round to the cluster's first
	// slot, which is the only stop when the table has no empty slot.
	first := m.findEmptyOrMatchingKey(key)
	for i := index + 1; i < m.table; i++ {
		if i == first || m.slots[i].key.IsHashNull() {
			return m.table
		}
		if m.slots[i].key == key {
			return i
		}
	}
	for i := 0; i < index; i++ {
		if i == first || m.slots[i].key.IsHashNull() {
			return m.table
		}
		if m.slots[i].key == key {
			return i
		}
	}
	return m.table
}

func (m *MultiMap[K, V]) IndexValidOf(key K, index int) bool {
	return m.IndexValid(index)
}

func (m *MultiMap[K, V]) KeyAt(index int) K     { return m.slots[index].key }
func (m *MultiMap[K, V]) ValueAt(index int) V   { return m.slots[index].value }
func (m *MultiMap[K, V]) KeyValueAt(index int) (K, V) {
	return m.slots[index].key, m.slots[index].value
}

// --- AbstractSet conformance: the multimap viewed as the set of its distinct keys ---

func (m *MultiMap[K, V]) Enumerate(sink Collector[K], limit AbstractSet[K]) {
	for i := m.FirstIndex(); m.IndexValid(i); i = m.NextIndex(i) {
		key := m.KeyAt(i)
		if limit == nil || limit.Contains(key) {
			sink.Push(key)
		}
	}
}

func (m *MultiMap[K, V]) EnumerationCost() int { return m.Count() }
func (m *MultiMap[K, V]) ChangeCount() int     { return m.change }

// checkInvariants re-derives the occupied-slot count, confirms every
// occupied pair is reachable via ContainsPair, and that every occupied
// slot's cluster cursor (FirstIndexOf/NextIndexOf) reaches it, i.e. the
// slot lies on the one contiguous run its key owns. Gated by invariants.
func (m *MultiMap[K, V]) checkInvariants() {
	if !invariants {
		return
	}
	occupied := 0
	for i := 0; i < m.table; i++ {
		if !m.slots[i].key.IsHashNull() {
			occupied++
			key := m.slots[i].key
			assertInvariant(m.ContainsPair(key, m.slots[i].value),
				"multimap: occupied pair at slot %d not found by ContainsPair", i)
			reached := false
			for j := m.FirstIndexOf(key); m.IndexValidOf(key, j); j = m.NextIndexOf(key, j) {
				if j == i {
					reached = true
					break
				}
			}
			assertInvariant(reached, "multimap: slot %d not reachable via its key's cluster cursor", i)
		}
	}
	assertInvariant(occupied == m.active, "multimap: active=%d but %d slots occupied", m.active, occupied)
}

// --- internals ---

func (m *MultiMap[K, V]) findEmptyOrMatchingKey(key K) int {
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

func (m *MultiMap[K, V]) findEmptyOrMatchingPair(key K, value V) int {
	start := int(key.Hash() % uint64(m.table))
	for i := start; i < m.table; i++ {
		if m.slots[i].key.IsHashNull() || (m.slots[i].key == key && m.slots[i].value == value) {
			return i
		}
	}
	for i := 0; i < start; i++ {
		if m.slots[i].key.IsHashNull() || (m.slots[i].key == key && m.slots[i].value == value) {
			return i
		}
	}
	return 0
}

func (m *MultiMap[K, V]) reinsert(index int) {
	newIndex := m.findEmptyOrMatchingPair(m.slots[index].key, m.slots[index].value)
	if newIndex != index {
		m.slots[newIndex] = m.slots[index]
		m.slots[index] = pair[K, V]{}
	}
}

// fixUp reheals the cluster after a run of removals: reinsert exactly
// count slots starting just after index (wrapping), so any other-key
// entries whose probe chain was disturbed by the new holes land back on
// a contiguous run.
func (m *MultiMap[K, V]) fixUp(index, count int) {
	for i := index + 1; i < m.table; i++ {
		if count == 0 {
			return
		}
		count--
		if !m.slots[i].key.IsHashNull() {
			m.reinsert(i)
		}
	}
	for i := 0; i < index; i++ {
		if count == 0 {
			return
		}
		count--
		if !m.slots[i].key.IsHashNull() {
			m.reinsert(i)
		}
	}
}

func (m *MultiMap[K, V]) isFirstInRun(index int) bool {
	key := m.slots[index].key
	for i := index - 1; i >= 0; i-- {
		if m.slots[i].key.IsHashNull() {
			return true
		}
		if m.slots[i].key == key {
			return false
		}
	}
	sawKey := false
	for i := m.table - 1; i > index; i-- {
		if m.slots[i].key.IsHashNull() {
			return !sawKey
		}
		if m.slots[i].key == key {
			sawKey = true
		}
	}
	// No empty slot anywhere: the lowest-indexed slot holding key stands
	// for it.
	return true
}

func (m *MultiMap[K, V]) removeAll(key K) bool {
	before := m.active
	if key.IsHashNull() {
		return false
	}
	index := m.findEmptyOrMatchingKey(key)
	if m.slots[index].key != key {
		return false
	}
	count := 0
	i := index
	for !m.slots[i].key.IsHashNull() {
		if m.slots[i].key == key {
			m.slots[i] = pair[K, V]{}
			m.active--
		}
		count++
		i = (i + 1) % m.table
	}
	m.fixUp(index, count)
	return m.active < before
}

func (m *MultiMap[K, V]) removeOne(key K, value V) bool {
	before := m.active
	if key.IsHashNull() || value.IsHashNull() {
		return false
	}
	index := m.findEmptyOrMatchingKey(key)
	if m.slots[index].key != key {
		return false
	}
	count := 0
	i := index
	for count < m.table && !m.slots[i].key.IsHashNull() {
		if m.slots[i].key == key && m.slots[i].value == value {
			m.slots[i] = pair[K, V]{}
			m.active--
		}
		count++
		i = (i + 1) % m.table
	}
	m.fixUp(index, count)
	return m.active < before
}

func (m *MultiMap[K, V]) grow() {
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

func (m *MultiMap[K, V]) shrink() {
	if m.table > m.tableMin && m.active*100 < m.table*m.shrinkAt {
		newTable := max(m.table/2, m.tableMin)
		newCap := max(newTable, m.allocMin)
		if !m.dynamic {
			newCap = len(m.slots)
		}
		m.resize(newTable, newCap)
	}
}

func (m *MultiMap[K, V]) autoGrowNow() {
	if m.autoGrow {
		m.grow()
	}
}

func (m *MultiMap[K, V]) autoShrinkNow() {
	if m.autoShrink {
		m.shrink()
	}
}

func (m *MultiMap[K, V]) resize(newTable, newCap int) {
	switch {
	case m.alloc != nil && len(m.slots) != newCap:
		var newSlots []pair[K, V]
		if newCap > 0 {
			newSlots = m.alloc.Allocate(newCap, "mojolib.MultiMap")
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
