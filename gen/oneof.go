package gen

import "github.com/ewhite/propcheck/prop"

// OneOf draws one byte and selects among values: when len(values) is a
// power of two the selection is exactly uniform (values[byte*N/256]);
// otherwise it reduces modulo N, which is slightly biased towards the
// earlier entries. values may hold at most 256 candidates; more than that
// panics with a *prop.ConfigError, since a single byte cannot address a
// larger set.
func OneOf[V any](t *prop.T, name string, values []V) V {
	if len(values) == 0 {
		panic(&prop.ConfigError{Msg: "gen.OneOf: values must be non-empty"})
	}
	if len(values) > 256 {
		panic(&prop.ConfigError{Msg: "gen.OneOf: at most 256 values"})
	}
	b := t.Draw(1)[0]
	idx := chooseIndex(b, len(values))
	v := values[idx]
	t.Record(name, v)
	return v
}

// chooseIndex maps a drawn byte to an index in [0, n) using the choice-of-N
// contract: a power-of-two n gets an exactly uniform mapping, anything else
// falls back to a biased modulo reduction.
func chooseIndex(b byte, n int) int {
	if n&(n-1) == 0 {
		return int(b) * n / 256
	}
	return int(b) % n
}
