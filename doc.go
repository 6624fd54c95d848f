// Package mojolib implements a generic in-memory container and
// set-algebra library: an open-addressed hash table family (Set, Map,
// MultiMap) with explicit growth/shrink policy and pluggable allocation,
// a many-to-one Relation kept bidirectionally consistent, and an
// abstract-set composition layer (Union, Intersection, Difference,
// Complement, and relation-closure operators) that evaluates membership
// and enumeration lazily over arbitrary combinations of the above.
//
// None of the containers are safe for concurrent use. Mutating a
// container invalidates any cursor in flight over it.
package mojolib
