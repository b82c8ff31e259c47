// Package gen provides generators for property-based testing in Go. Every
// generator in this package is a pure consumer of bytes drawn from the
// ambient prop.T: given the same bytes it always decodes the same value,
// which is what lets propcheck shrink by editing bytes instead of typed
// values.
package gen

import (
	"math/bits"

	"github.com/ewhite/propcheck/prop"
)

// Generator is a reusable, composable producer of values. Unlike the named
// top-level functions in this package (Bool, IntRange, String, ...), a
// Generator never names its own draws — nesting one inside SliceOf,
// VectorOf, Map, Filter or Bind is exactly how a composite value's
// sub-draws stay unnamed: each sub-draw still records its own interval, but
// only the composite's final value can appear as a named binding.
type Generator[V any] func(t *prop.T) V

// drawBoundedUint64 draws ceil(bits/8) bytes, where bits is the bit-width
// of span, masks the top byte down to the remaining high bits, and reduces
// the result modulo span+1. The result is uniform over [0, span] except for
// the small bias the modulo reduction introduces when span+1 isn't a power
// of two — exactly the bounded-integer contract the byte-sequence protocol
// calls for: shrinking a drawn byte towards zero shrinks the decoded value
// towards zero.
//
// span may be zero (a single-valued range); a single byte is still drawn so
// the call registers an interval, per the rule that every top-level
// generator must draw at least once.
func drawBoundedUint64(t *prop.T, span uint64) uint64 {
	if span == 0 {
		t.Draw(1)
		return 0
	}
	width := bits.Len64(span)
	nbytes := (width + 7) / 8
	b := t.Draw(nbytes)

	topBits := width - (nbytes-1)*8
	if topBits > 0 && topBits < 8 {
		b[0] &= byte(1<<uint(topBits)) - 1
	}

	var v uint64
	for _, by := range b {
		v = v<<8 | uint64(by)
	}
	return v % (span + 1)
}

// zigzagDecode maps a non-negative integer to a signed one in increasing
// order of magnitude: 0,1,2,3,4... -> 0,-1,1,-2,2... This is how the
// bound-free integer generators shrink towards zero regardless of sign,
// since the byte-level shrinker only ever decreases the raw drawn value.
func zigzagDecode(v uint64) int64 {
	if v%2 == 0 {
		return int64(v / 2)
	}
	return -int64((v + 1) / 2)
}
