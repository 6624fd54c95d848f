package mojolib

import "fmt"

// invariants gates the checkInvariants-style assertion passes run after
// mutation; debug gates verbose tracing. Both are compile-time constants
// exactly as cockroachdb-swiss/map.go gates its own invariant checking, so
// that a release build pays nothing for either.
const (
	invariants = false
	debug      = false
)

func trace(format string, args ...any) {
	if debug {
		fmt.Printf(format+"\n", args...)
	}
}

func assertInvariant(cond bool, format string, args ...any) {
	if invariants && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
