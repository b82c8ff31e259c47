// Package prop ties the choice-sequence engine together: it runs a
// predicate under a fresh choice.Sequence, searches for a counterexample,
// shrinks one when found, and replays the minimal counterexample to harvest
// named bindings for the failure report.
package prop

import (
	"flag"
	"time"
)

var (
	// flagSeed sets the random seed used for example generation.
	// Default: 0 (a fresh seed derived from the current time).
	flagSeed = flag.Int64("propcheck.seed", 0, "random seed for example generation")

	// flagExamples sets how many fresh examples Check tries before giving
	// up and declaring the property held.
	flagExamples = flag.Int("propcheck.examples", 100, "number of examples to generate")

	// flagMaxShrinks sets the global shrink budget: the total number of
	// predicate re-runs the shrinker is allowed to spend, successful or
	// not, across all of its passes.
	flagMaxShrinks = flag.Int("propcheck.maxshrinks", 200, "maximum number of shrink evaluations")
)

// Config holds the configuration for one Check invocation.
type Config struct {
	// Seed is the random seed used for example generation. If zero, a
	// fresh seed is derived from the current time.
	Seed int64

	// MaxExamples is the number of fresh examples to try before declaring
	// the property held.
	MaxExamples int

	// MaxShrinks is the global shrink budget: the maximum number of
	// predicate re-runs the shrinker may spend once a counterexample is
	// found, across every pass.
	MaxShrinks int
}

// Default returns a Config populated from the propcheck.* command-line
// flags, the recommended way to configure Check from a *_test.go file.
func Default() Config {
	return Config{
		Seed:        *flagSeed,
		MaxExamples: *flagExamples,
		MaxShrinks:  *flagMaxShrinks,
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
