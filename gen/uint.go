package gen

import "github.com/ewhite/propcheck/prop"

// Uint draws an unbounded-feeling unsigned integer in [0, 100], shrinking
// towards zero (raw byte zero decodes to 0).
func Uint(t *prop.T, name string) uint {
	v := drawBoundedUint64(t, 100)
	result := uint(v)
	t.Record(name, result)
	return result
}

// UintRange draws a uint uniformly over [lo, hi] (inclusive), shrinking
// towards lo. Panics with a *prop.ConfigError if lo >= hi.
func UintRange(t *prop.T, name string, lo, hi uint) uint {
	if lo >= hi {
		panic(&prop.ConfigError{Msg: "gen.UintRange: lo must be < hi"})
	}
	v := drawBoundedUint64(t, uint64(hi-lo))
	result := lo + uint(v)
	t.Record(name, result)
	return result
}

// Uint64 draws an unbounded-feeling uint64 in [0, 100], shrinking towards
// zero.
func Uint64(t *prop.T, name string) uint64 {
	v := drawBoundedUint64(t, 100)
	t.Record(name, v)
	return v
}

// Uint64Range draws a uint64 uniformly over [lo, hi] (inclusive), shrinking
// towards lo. Panics with a *prop.ConfigError if lo >= hi.
func Uint64Range(t *prop.T, name string, lo, hi uint64) uint64 {
	if lo >= hi {
		panic(&prop.ConfigError{Msg: "gen.Uint64Range: lo must be < hi"})
	}
	v := lo + drawBoundedUint64(t, hi-lo)
	t.Record(name, v)
	return v
}
