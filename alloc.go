package mojolib

import (
	"reflect"
	"sync"
)

// Allocator is the out-of-scope-collaborator interface this package
// consumes for buffer management, generalized from the teacher's
// Allocator[K,V] (options.go) to a single slot type T. Allocate returns a
// slice of length n tagged with name for diagnostics; it may return nil to
// signal allocation failure, which surfaces as StatusCouldNotAlloc. Free
// releases a slice previously returned by Allocate.
type Allocator[T any] interface {
	Allocate(n int, tag string) []T
	Free(s []T)
}

// defaultAllocator is the built-in Allocator backed by make()/the garbage
// collector, mirroring cockroachdb-swiss/options.go's defaultAllocator.
type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Allocate(n int, tag string) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

func (defaultAllocator[T]) Free(s []T) {}

// defaultAllocators holds the process-wide default allocator per slot
// type. Go generics have no single parameterized global, so the registry
// is keyed by reflect.Type of the slot, matching the pattern used to carry
// per-type state in generic libraries without a language-level home for it.
var defaultAllocators sync.Map // map[reflect.Type]any holding Allocator[T]

// SetDefaultAllocator installs a as the process-wide default allocator for
// slot type T, overriding the built-in make()-based allocator. This
// corresponds to the library-wide "process-wide default" allocator named
// in the external interfaces.
func SetDefaultAllocator[T any](a Allocator[T]) {
	var zero T
	defaultAllocators.Store(reflect.TypeOf(zero), a)
}

func getDefaultAllocator[T any]() Allocator[T] {
	var zero T
	if v, ok := defaultAllocators.Load(reflect.TypeOf(zero)); ok {
		if a, ok := v.(Allocator[T]); ok {
			return a
		}
	}
	return defaultAllocator[T]{}
}
