package prop

import (
	"fmt"

	"github.com/ewhite/propcheck/choice"
)

// T is the ambient draw context threaded through a single predicate
// invocation, analogous to *testing.T but for generation instead of
// assertions. Generators never see a *choice.Sequence directly; they only
// ever call T.Draw, which keeps every generator a pure function of the
// sequence and lets the shrinker operate on bytes without knowing anything
// about the generators that produced them.
//
// A T is valid only for the duration of the predicate invocation that
// received it; it must not be retained or used from another goroutine.
type T struct {
	seq *choice.Sequence
	rec *replayRecorder
}

// Draw reads n bytes from the ambient choice sequence and records an
// interval covering them. If the sequence is in fixed mode (shrinking or
// replay) and the read would run past the end, Draw aborts the current run
// by panicking with overrunSignal; the runner interprets this as "this
// candidate does not reproduce" rather than letting it escape.
func (t *T) Draw(n int) []byte {
	b, err := t.seq.Draw(n)
	if err != nil {
		panic(overrunSignal{})
	}
	return b
}

// Record appends (name, value) to the active replay record, if any. Called
// by top-level generators after they've decoded a value. An empty name is
// ignored: nested draws either skip Record entirely or pass an empty name,
// which is how "top-level named value" in the spec gets translated to
// "appears in the report".
func (t *T) Record(name string, value any) {
	if t.rec == nil || name == "" {
		return
	}
	t.rec.append(name, value)
}

// Assert fails the current predicate invocation if cond is false, raising
// an internal counterexample signal that only the runner catches. format
// and args build the message attached to the signal (for diagnostics only;
// shrinking and replay do not depend on it).
func (t *T) Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(counterexampleSignal{msg: fmt.Sprintf(format, args...)})
}
