package prop

import (
	"math/rand"
	"testing"

	"github.com/ewhite/propcheck/choice"
)

// Check drives body up to cfg.MaxExamples times against fresh choice
// sequences looking for a counterexample. If it finds one, it shrinks it
// (spending up to cfg.MaxShrinks predicate re-runs), replays the minimal
// counterexample to harvest named bindings, and fails t with a reproducible
// report. If no example fails, Check returns normally and the property is
// considered to hold for this run.
func Check(t *testing.T, cfg Config, body func(*T)) {
	t.Helper()

	seed := cfg.effectiveSeed()
	rnd := rand.New(rand.NewSource(seed))

	t.Logf("[propcheck] seed=%d examples=%d max_shrinks=%d", seed, cfg.MaxExamples, cfg.MaxShrinks)

	for i := 0; i < cfg.MaxExamples; i++ {
		seq := choice.New(rnd)
		res := runOnce(seq, nil, body)
		if !res.failed {
			continue
		}

		counterexample := res.seq.Rewind()
		minimal := shrink(counterexample, cfg.MaxShrinks, body)
		bindings := replay(minimal, body)

		report := Report{Message: "Found counterexample", Bindings: bindings}
		t.Fatalf("[propcheck] %s; seed=%d example=%d/%d; %s\nbindings:\n%s\nreplay: go test -run %q -propcheck.seed=%d",
			report.Message, seed, i+1, cfg.MaxExamples, res.message,
			FormatBindings(bindings), t.Name(), seed)
		return
	}
}
