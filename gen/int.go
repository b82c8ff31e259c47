package gen

import "github.com/ewhite/propcheck/prop"

// Int draws a bound-free integer biased towards zero in either direction.
// Byte zero decodes to 0, and increasing raw values walk outward in a
// zigzag (0, -1, 1, -2, 2, ...), clamped to roughly [-100, 100]. Use
// IntRange when the test needs an exact bound instead.
func Int(t *prop.T, name string) int {
	v := drawBoundedUint64(t, 200)
	result := int(zigzagDecode(v))
	t.Record(name, result)
	return result
}

// IntRange draws an integer uniformly distributed over [lo, hi] (inclusive)
// that shrinks towards lo, per the bounded-integer contract: the smallest
// raw bytes decode to lo. Panics with a *prop.ConfigError if lo >= hi.
func IntRange(t *prop.T, name string, lo, hi int) int {
	if lo >= hi {
		panic(&prop.ConfigError{Msg: "gen.IntRange: lo must be < hi"})
	}
	v := drawBoundedUint64(t, uint64(hi-lo))
	result := lo + int(v)
	t.Record(name, result)
	return result
}

// IntRangeGen is IntRange's composable, unnamed form.
func IntRangeGen(lo, hi int) Generator[int] {
	if lo >= hi {
		panic(&prop.ConfigError{Msg: "gen.IntRangeGen: lo must be < hi"})
	}
	span := uint64(hi - lo)
	return func(t *prop.T) int {
		return lo + int(drawBoundedUint64(t, span))
	}
}

// Int64 is Int's 64-bit counterpart: bound-free, zigzag-decoded, clamped to
// roughly [-100, 100].
func Int64(t *prop.T, name string) int64 {
	v := drawBoundedUint64(t, 200)
	result := zigzagDecode(v)
	t.Record(name, result)
	return result
}

// Int64Range draws an int64 uniformly over [lo, hi] (inclusive), shrinking
// towards lo. Panics with a *prop.ConfigError if lo >= hi.
func Int64Range(t *prop.T, name string, lo, hi int64) int64 {
	if lo >= hi {
		panic(&prop.ConfigError{Msg: "gen.Int64Range: lo must be < hi"})
	}
	v := lo + int64(drawBoundedUint64(t, uint64(hi-lo)))
	t.Record(name, v)
	return v
}
