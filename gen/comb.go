package gen

import "github.com/ewhite/propcheck/prop"

// Const always returns v without drawing any bytes. It has no interval of
// its own, so it only makes sense as a nested generator.
func Const[V any](v V) Generator[V] {
	return func(_ *prop.T) V { return v }
}

// Map applies f to the value ga produces. Because shrinking happens on the
// underlying bytes rather than on ga's output, Map needs no special
// shrinking support: editing the bytes ga reads from automatically edits
// the mapped result too.
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] {
	return func(t *prop.T) B { return f(ga(t)) }
}

// Filter keeps drawing from g until pred holds, up to maxTries attempts (a
// non-positive maxTries means 1000). If every attempt fails the predicate,
// it panics with a *prop.ConfigError — a generator that can almost never
// satisfy its filter is a configuration mistake, not a counterexample.
func Filter[V any](g Generator[V], pred func(V) bool, maxTries int) Generator[V] {
	if maxTries <= 0 {
		maxTries = 1000
	}
	return func(t *prop.T) V {
		for i := 0; i < maxTries; i++ {
			v := g(t)
			if pred(v) {
				return v
			}
		}
		panic(&prop.ConfigError{Msg: "gen.Filter: predicate never satisfied within maxTries"})
	}
}

// Bind lets the generator for B depend on the value A produced (flatMap).
func Bind[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return func(t *prop.T) B {
		a := ga(t)
		return f(a)(t)
	}
}

// OneOfGen chooses among several nested generators using the same
// choice-of-N decoding as OneOf (uniform for a power-of-two count, biased
// modulo otherwise), then runs the chosen one.
func OneOfGen[V any](gens ...Generator[V]) Generator[V] {
	if len(gens) == 0 {
		panic(&prop.ConfigError{Msg: "gen.OneOfGen: needs at least one generator"})
	}
	if len(gens) > 256 {
		panic(&prop.ConfigError{Msg: "gen.OneOfGen: at most 256 generators"})
	}
	n := len(gens)
	return func(t *prop.T) V {
		b := t.Draw(1)[0]
		idx := chooseIndex(b, n)
		return gens[idx](t)
	}
}
