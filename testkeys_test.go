package mojolib

import "github.com/cespare/xxhash/v2"

// intKey is a key fixture with a deliberately collidable hash: callers in
// tests construct keys whose Hash() is the int value itself, so a given
// table_count's modulus can be forced to collide exactly as scenario 1 of
// the testable-properties section requires.
type intKey int

func (k intKey) Hash() uint64     { return uint64(k) }
func (k intKey) IsHashNull() bool { return k == 0 }

// stringKey hashes via xxhash, a real string hash rather than the identity
// hash intKey uses. The tests in this package use intKey only.
type stringKey string

func (k stringKey) Hash() uint64 {
	return xxhash.Sum64String(string(k))
}

func (k stringKey) IsHashNull() bool { return k == "" }

// strValue is a Nullable value fixture for Map/MultiMap/Relation tests
// that need a value type distinct from the key type.
type strValue string

func (v strValue) IsHashNull() bool { return v == "" }

func ik(n int) intKey { return intKey(n) }
