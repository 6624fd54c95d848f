package mojolib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectOneHop(t *testing.T) {
	r := NewRelation[intKey]()
	require.Equal(t, StatusOK, r.InsertChildParent(ik(1), ik(100)))
	require.Equal(t, StatusOK, r.InsertChildParent(ik(2), ik(200)))

	source := newIntSet(t, 1, 2)
	d := Direct[intKey](r, source)

	require.True(t, d.Contains(ik(100)))
	require.True(t, d.Contains(ik(200)))
	require.False(t, d.Contains(ik(1)))

	got := enumerateToSlice(t, d)
	require.ElementsMatch(t, []int{100, 200}, got)
}

func TestInverseOneHop(t *testing.T) {
	r := NewRelation[intKey]()
	require.Equal(t, StatusOK, r.InsertChildParent(ik(1), ik(100)))
	require.Equal(t, StatusOK, r.InsertChildParent(ik(2), ik(100)))
	require.Equal(t, StatusOK, r.InsertChildParent(ik(3), ik(200)))

	source := newIntSet(t, 100)
	n := Inverse[intKey](r, source)

	require.True(t, n.Contains(ik(1)))
	require.True(t, n.Contains(ik(2)))
	require.False(t, n.Contains(ik(3)))

	got := enumerateToSlice(t, n)
	require.ElementsMatch(t, []int{1, 2}, got)
}

func TestDirectClosedDeepClosure(t *testing.T) {
	// Scenario 6: c->b, b->a, d->a; input set {c,d}.
	r := NewRelation[intKey]()
	c, b, a, d := ik(3), ik(2), ik(1), ik(4)
	require.Equal(t, StatusOK, r.InsertChildParent(c, b))
	require.Equal(t, StatusOK, r.InsertChildParent(b, a))
	require.Equal(t, StatusOK, r.InsertChildParent(d, a))

	source := newIntSet(t, int(c), int(d))
	closure := DirectClosedDeep[intKey](r, source)

	require.True(t, closure.Contains(a))
	require.True(t, closure.Contains(b))
	require.False(t, closure.Contains(c))

	collected := NewSet[intKey]()
	closure.Enumerate(SetCollector[intKey]{Set: collected}, nil)
	require.True(t, collected.Contains(a))
	require.True(t, collected.Contains(b))
	require.Equal(t, 2, collected.Count())
}

func TestDirectClosedDeepNoParentEmitsSelf(t *testing.T) {
	r := NewRelation[intKey]()
	source := newIntSet(t, 7)
	closure := DirectClosedDeep[intKey](r, source)

	collected := NewSet[intKey]()
	closure.Enumerate(SetCollector[intKey]{Set: collected}, nil)
	require.Equal(t, 1, collected.Count())
	require.True(t, collected.Contains(ik(7)))
}

func TestInverseClosedDeepClosure(t *testing.T) {
	// a is the root; b and c are its children; c has a grandchild d (leaf).
	r := NewRelation[intKey]()
	a, b, c, d := ik(1), ik(2), ik(3), ik(4)
	require.Equal(t, StatusOK, r.InsertChildParent(b, a))
	require.Equal(t, StatusOK, r.InsertChildParent(c, a))
	require.Equal(t, StatusOK, r.InsertChildParent(d, c))

	source := newIntSet(t, int(a))
	closure := InverseClosedDeep[intKey](r, source)

	// Contains recognizes every node in the tree, root through leaf.
	require.True(t, closure.Contains(a))
	require.True(t, closure.Contains(b))
	require.True(t, closure.Contains(c))
	require.True(t, closure.Contains(d))

	// Enumeration must agree with Contains on every node (totality).
	collected := NewSet[intKey]()
	closure.Enumerate(SetCollector[intKey]{Set: collected}, nil)
	require.Equal(t, 4, collected.Count())
	for _, k := range []intKey{a, b, c, d} {
		require.Equal(t, closure.Contains(k), collected.Contains(k), "node %d", k)
		require.True(t, collected.Contains(k))
	}
}

func TestInverseClosedDeepLeafEmitsSelf(t *testing.T) {
	r := NewRelation[intKey]()
	source := newIntSet(t, 9)
	closure := InverseClosedDeep[intKey](r, source)

	collected := NewSet[intKey]()
	closure.Enumerate(SetCollector[intKey]{Set: collected}, nil)
	require.Equal(t, 1, collected.Count())
	require.True(t, collected.Contains(ik(9)))
}
