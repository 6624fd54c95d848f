package mojolib

// Config carries the growth/shrink policy knobs shared by Set, Map, and
// MultiMap. It is a plain record, constructed directly or via Option
// functions passed to the container constructors — mirroring the
// teacher's own plain-struct-plus-functional-options split between data
// and wiring.
type Config struct {
	AllocCountMin   int
	TableCountMin   int
	GrowThreshold   int
	ShrinkThreshold int
	AutoGrow        bool
	AutoShrink      bool
	DynamicAlloc    bool
}

// DefaultConfig returns the package's baseline policy: grow at 80% load,
// shrink below 30% load, never below 8 slots, with both auto-grow and
// auto-shrink enabled and dynamic allocation on.
func DefaultConfig() Config {
	return Config{
		AllocCountMin:   8,
		TableCountMin:   8,
		GrowThreshold:   80,
		ShrinkThreshold: 30,
		AutoGrow:        true,
		AutoShrink:      true,
		DynamicAlloc:    true,
	}
}

// valid reports whether c satisfies the constraints required by create:
// alloc_count_min >= 2, table_count_min >= 2, grow_threshold > 2*shrink_threshold.
func (c Config) valid() bool {
	return c.AllocCountMin > 1 && c.TableCountMin > 1 && c.GrowThreshold > 2*c.ShrinkThreshold
}
