package mojolib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetChurn(t *testing.T) {
	// Scenario 1: alloc_count_min=8, table_count_min=4, grow=80, shrink=30.
	cfg := Config{
		AllocCountMin:   8,
		TableCountMin:   4,
		GrowThreshold:   80,
		ShrinkThreshold: 30,
		AutoGrow:        true,
		AutoShrink:      true,
		DynamicAlloc:    true,
	}
	s := NewSet[intKey](WithConfig[intKey](cfg))
	require.Equal(t, StatusOK, s.GetStatus())

	for _, h := range []int{1, 9, 17, 25, 2, 10, 18} {
		require.Equal(t, StatusOK, s.Insert(ik(h)))
	}
	require.Equal(t, StatusOK, s.Remove(ik(9)))

	require.True(t, s.Contains(ik(17)))
	require.True(t, s.Contains(ik(25)))
	require.True(t, s.Contains(ik(1)))
	require.False(t, s.Contains(ik(9)))
	require.Equal(t, 6, s.Count())
}

func TestSetInsertIdempotent(t *testing.T) {
	s := NewSet[intKey]()
	require.Equal(t, StatusOK, s.Insert(ik(5)))
	require.Equal(t, StatusOK, s.Insert(ik(5)))
	require.Equal(t, 1, s.Count())
}

func TestSetRoundTrip(t *testing.T) {
	s := NewSet[intKey]()
	require.Equal(t, StatusOK, s.Insert(ik(42)))
	require.Equal(t, StatusOK, s.Remove(ik(42)))
	require.False(t, s.Contains(ik(42)))
	require.Equal(t, 0, s.Count())
}

func TestSetNullKeyIsInvalidArgument(t *testing.T) {
	s := NewSet[intKey]()
	require.Equal(t, StatusInvalidArguments, s.Insert(ik(0)))
	require.Equal(t, StatusNotFound, s.Remove(ik(0)))
}

func TestSetRemoveMissingIsNotFound(t *testing.T) {
	s := NewSet[intKey]()
	require.Equal(t, StatusOK, s.Insert(ik(1)))
	require.Equal(t, StatusNotFound, s.Remove(ik(2)))
}

func TestSetDoubleCreateIsError(t *testing.T) {
	s := NewSet[intKey]()
	require.Equal(t, StatusDoubleInitialized, s.Create())
}

func TestSetEnumerationTotality(t *testing.T) {
	s := NewSet[intKey]()
	for _, h := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		require.Equal(t, StatusOK, s.Insert(ik(h)))
	}
	collected := NewSet[intKey]()
	s.Enumerate(SetCollector[intKey]{Set: collected}, nil)
	require.Equal(t, s.Count(), collected.Count())
	for _, h := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		require.True(t, collected.Contains(ik(h)))
	}
}

func TestSetGrowAndShrinkPreserveContents(t *testing.T) {
	s := NewSet[intKey]()
	keys := make([]int, 0, 100)
	for i := 1; i <= 100; i++ {
		keys = append(keys, i)
		require.Equal(t, StatusOK, s.Insert(ik(i)))
	}
	require.Equal(t, 100, s.Count())
	for _, h := range keys {
		require.True(t, s.Contains(ik(h)))
	}
	for i := 1; i <= 90; i++ {
		require.Equal(t, StatusOK, s.Remove(ik(i)))
	}
	require.Equal(t, 10, s.Count())
	for i := 91; i <= 100; i++ {
		require.True(t, s.Contains(ik(i)))
	}
}

func TestSetResetShrinksToMinimum(t *testing.T) {
	s := NewSet[intKey]()
	for i := 1; i <= 50; i++ {
		require.Equal(t, StatusOK, s.Insert(ik(i)))
	}
	s.Reset()
	require.Equal(t, 0, s.Count())
	require.False(t, s.Contains(ik(1)))
	require.Equal(t, StatusOK, s.Insert(ik(1)))
	require.True(t, s.Contains(ik(1)))
}

func TestSetFixedBufferCapsGrowth(t *testing.T) {
	buf := make([]intKey, 4)
	cfg := Config{
		AllocCountMin:   4,
		TableCountMin:   4,
		GrowThreshold:   80,
		ShrinkThreshold: 30,
		AutoGrow:        true,
		AutoShrink:      true,
		DynamicAlloc:    true, // forced off anyway once a fixed buffer is supplied
	}
	s := NewSet[intKey](WithFixedBuffer[intKey](buf), WithConfig[intKey](cfg))
	require.Equal(t, StatusOK, s.GetStatus())
	for i := 1; i <= 4; i++ {
		require.Equal(t, StatusOK, s.Insert(ik(i)))
	}
	require.Equal(t, StatusCouldNotAlloc, s.Insert(ik(5)))
}

func TestSetFixedBufferTooSmallIsCouldNotAlloc(t *testing.T) {
	buf := make([]intKey, 1)
	s := NewSet[intKey](WithFixedBuffer[intKey](buf), WithConfig[intKey](DefaultConfig()))
	require.Equal(t, StatusCouldNotAlloc, s.GetStatus())
}
