package mojolib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func valuesOf(t *testing.T, m *MultiMap[intKey, strValue], key intKey) []strValue {
	t.Helper()
	var got []strValue
	for i := m.FirstIndexOf(key); m.IndexValidOf(key, i); i = m.NextIndexOf(key, i) {
		got = append(got, m.ValueAt(i))
	}
	return got
}

func TestMultiMapCluster(t *testing.T) {
	// Scenario 3: table_count=4 so keys 1 and 9 collide at slot 1.
	cfg := Config{
		AllocCountMin:   8,
		TableCountMin:   4,
		GrowThreshold:   80,
		ShrinkThreshold: 30,
		AutoGrow:        false,
		AutoShrink:      false,
		DynamicAlloc:    true,
	}
	m := NewMultiMap[intKey, strValue](WithConfig[pair[intKey, strValue]](cfg))
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "b"))
	require.Equal(t, StatusOK, m.Insert(ik(9), "x"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "c"))

	require.ElementsMatch(t, []strValue{"a", "b", "c"}, valuesOf(t, m, ik(1)))
	require.ElementsMatch(t, []strValue{"x"}, valuesOf(t, m, ik(9)))

	v, ok := m.Find(ik(1))
	require.True(t, ok)
	require.Contains(t, []strValue{"a", "b", "c"}, v)

	require.Equal(t, StatusOK, m.RemoveOne(ik(1), "b"))
	require.ElementsMatch(t, []strValue{"a", "c"}, valuesOf(t, m, ik(1)))
	require.ElementsMatch(t, []strValue{"x"}, valuesOf(t, m, ik(9)))
}

func TestMultiMapRemoveAll(t *testing.T) {
	// Scenario 4.
	m := NewMultiMap[intKey, strValue]()
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "b"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "c"))
	require.Equal(t, StatusOK, m.Insert(ik(9), "x"))

	require.Equal(t, StatusOK, m.RemoveAll(ik(1)))
	require.False(t, m.Contains(ik(1)))
	require.True(t, m.ContainsPair(ik(9), "x"))
	require.Equal(t, 1, m.Count())
}

func TestMultiMapInsertDuplicatePairIsNoOp(t *testing.T) {
	m := NewMultiMap[intKey, strValue]()
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, 1, m.Count())
}

func TestMultiMapRemoveOneMissingPairIsNotFound(t *testing.T) {
	m := NewMultiMap[intKey, strValue]()
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusNotFound, m.RemoveOne(ik(1), "z"))
}

func TestMultiMapWholeTableEnumerationYieldsEachKeyOnce(t *testing.T) {
	m := NewMultiMap[intKey, strValue]()
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusOK, m.Insert(ik(1), "b"))
	require.Equal(t, StatusOK, m.Insert(ik(2), "c"))
	require.Equal(t, StatusOK, m.Insert(ik(3), "d"))

	var keys []intKey
	for i := m.FirstIndex(); m.IndexValid(i); i = m.NextIndex(i) {
		keys = append(keys, m.KeyAt(i))
	}
	require.ElementsMatch(t, []intKey{1, 2, 3}, keys)
}

func TestMultiMapClusterSurvivesChurn(t *testing.T) {
	cfg := Config{
		AllocCountMin:   8,
		TableCountMin:   4,
		GrowThreshold:   80,
		ShrinkThreshold: 30,
		AutoGrow:        false,
		AutoShrink:      false,
		DynamicAlloc:    true,
	}
	m := NewMultiMap[intKey, strValue](WithConfig[pair[intKey, strValue]](cfg))
	require.Equal(t, StatusOK, m.Insert(ik(1), "a"))
	require.Equal(t, StatusOK, m.Insert(ik(5), "b"))
	require.Equal(t, StatusOK, m.Insert(ik(9), "c"))
	require.Equal(t, StatusOK, m.Insert(ik(13), "d"))
	require.Equal(t, StatusOK, m.RemoveOne(ik(5), "b"))

	require.ElementsMatch(t, []strValue{"a"}, valuesOf(t, m, ik(1)))
	require.ElementsMatch(t, []strValue{"c"}, valuesOf(t, m, ik(9)))
	require.ElementsMatch(t, []strValue{"d"}, valuesOf(t, m, ik(13)))
	require.False(t, m.Contains(ik(5)))
}
