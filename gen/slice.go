package gen

import "github.com/ewhite/propcheck/prop"

// listContinuationThreshold gives roughly a 20% chance per element to stop
// a list: a drawn byte <= the threshold stops the loop, guaranteeing the
// empty list on an all-zero sequence.
const listContinuationThreshold = 50

// SliceOf generates a variable-length []V using elem for each element.
// Before every element it draws one continuation byte; a byte at or below
// listContinuationThreshold (~20%) stops the loop, otherwise elem runs and
// its result is appended. elem's own draws are unnamed — only the finished
// slice is recorded under name.
func SliceOf[V any](t *prop.T, name string, elem Generator[V]) []V {
	var out []V
	for {
		stop := t.Draw(1)[0]
		if stop <= listContinuationThreshold {
			break
		}
		out = append(out, elem(t))
	}
	t.Record(name, out)
	return out
}

// VectorOf generates a fixed-length []V of exactly n elements, each from
// elem. Unlike SliceOf it draws no continuation bytes, so the bytes a
// vector consumes are exactly its n elements' draws, each recording its own
// interval.
func VectorOf[V any](t *prop.T, name string, n int, elem Generator[V]) []V {
	if n < 0 {
		panic(&prop.ConfigError{Msg: "gen.VectorOf: n must be >= 0"})
	}
	out := make([]V, n)
	for i := range out {
		out[i] = elem(t)
	}
	t.Record(name, out)
	return out
}

// SliceOfGen and VectorOfGen are the composable, unnamed forms of SliceOf
// and VectorOf, for nesting inside another composite generator.
func SliceOfGen[V any](elem Generator[V]) Generator[[]V] {
	return func(t *prop.T) []V {
		var out []V
		for {
			if t.Draw(1)[0] <= listContinuationThreshold {
				break
			}
			out = append(out, elem(t))
		}
		return out
	}
}

func VectorOfGen[V any](n int, elem Generator[V]) Generator[[]V] {
	return func(t *prop.T) []V {
		out := make([]V, n)
		for i := range out {
			out[i] = elem(t)
		}
		return out
	}
}
