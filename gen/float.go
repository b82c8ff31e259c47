package gen

import "github.com/ewhite/propcheck/prop"

// Float64 draws a float64 in roughly [-100, 100]. It composes directly on
// top of Int: the integer part comes from Int's zigzag-to-zero decoding (so
// it shrinks towards 0 the same way), and a second byte supplies two
// decimal digits of fraction. This is a known-weak generator: like the
// upstream design it is derived from, values cluster near the magnitudes
// Int favors rather than sampling the float64 range uniformly (see
// DESIGN.md).
func Float64(t *prop.T, name string) float64 {
	whole := Int(t, "")
	frac := t.Draw(1)[0] % 100
	v := float64(whole)
	if whole >= 0 {
		v += float64(frac) / 100
	} else {
		v -= float64(frac) / 100
	}
	t.Record(name, v)
	return v
}

// Float64Gen is Float64's composable, unnamed form.
var Float64Gen Generator[float64] = func(t *prop.T) float64 {
	whole := int(zigzagDecode(drawBoundedUint64(t, 200)))
	frac := t.Draw(1)[0] % 100
	v := float64(whole)
	if whole >= 0 {
		v += float64(frac) / 100
	} else {
		v -= float64(frac) / 100
	}
	return v
}
