package mojolib

// tableOptions collects the knobs a container constructor accepts,
// generalized from cockroachdb-swiss/options.go's option[K,V]/WithHash/
// WithAllocator pair into a single struct shared by Set, Map, and
// MultiMap, each parameterized by their own slot type T.
type tableOptions[T any] struct {
	config    Config
	hasConfig bool
	alloc     Allocator[T]
	fixed     []T
}

// Option configures a container at construction time, mirroring the
// teacher's functional-options pattern (WithHash, WithAllocator) but
// collapsed to one type parameter per slot type.
type Option[T any] func(*tableOptions[T])

// WithConfig overrides the default growth/shrink policy.
func WithConfig[T any](c Config) Option[T] {
	return func(o *tableOptions[T]) {
		o.config = c
		o.hasConfig = true
	}
}

// WithAllocator binds an explicit Allocator instead of the process-wide
// default.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *tableOptions[T]) {
		o.alloc = a
	}
}

// WithFixedBuffer supplies a caller-owned backing slice. When present, no
// allocator is bound, dynamic_alloc is forced off, and growth is capped at
// len(buffer); this is "fixed mode" in the spec's lifecycle section.
func WithFixedBuffer[T any](buffer []T) Option[T] {
	return func(o *tableOptions[T]) {
		o.fixed = buffer
	}
}

func resolveOptions[T any](opts []Option[T]) tableOptions[T] {
	var o tableOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasConfig {
		o.config = DefaultConfig()
	}
	if o.fixed != nil {
		o.config.DynamicAlloc = false
	}
	if o.fixed == nil && o.alloc == nil {
		o.alloc = getDefaultAllocator[T]()
	}
	if o.fixed != nil {
		o.alloc = nil
	}
	return o
}
