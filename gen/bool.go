package gen

import "github.com/ewhite/propcheck/prop"

// Bool draws one byte from the ambient sequence and decodes it to a
// boolean: byte >= 128 is true, else false. False is the "smaller" outcome
// by this convention, which is what the shrinker's zero-byte and
// subtract-amount passes drive towards.
func Bool(t *prop.T, name string) bool {
	b := t.Draw(1)
	v := b[0] >= 128
	t.Record(name, v)
	return v
}

// BoolGen is Bool's composable, unnamed form, for use as an element
// generator inside SliceOf, VectorOf, Map, Filter and Bind.
var BoolGen Generator[bool] = func(t *prop.T) bool {
	return t.Draw(1)[0] >= 128
}
