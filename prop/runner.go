package prop

import (
	"fmt"

	"github.com/ewhite/propcheck/choice"
)

// runResult is the outcome of one predicate invocation.
type runResult struct {
	// failed is true if the predicate raised a counterexample signal or
	// any other error/panic. Overrun is reported separately and is never
	// also failed.
	failed bool
	// overrun is true if a fixed-mode sequence ran out of bytes — the
	// candidate simply does not reproduce whatever it was derived from.
	overrun bool
	// seq is the sequence exactly as it stood when the predicate stopped
	// running (cursor parked wherever the last Draw left it, intervals
	// populated for everything actually drawn). Only meaningful when
	// failed is true.
	seq *choice.Sequence
	// message is a human-readable description of the failure, for
	// diagnostics only.
	message string
}

// runOnce installs seq as the ambient sequence for one invocation of body
// and reports how it went. A *ConfigError panic is never recovered here: it
// propagates straight out to whoever called runOnce, and from there out of
// Check, matching the "propagates synchronously to the caller" rule for
// configuration errors. Every other panic — the internal counterexample and
// overrun signals, and any error or runtime panic raised by user code — is
// recovered and translated into a runResult; the engine does not
// distinguish an assertion failure from a crash.
func runOnce(seq *choice.Sequence, rec *replayRecorder, body func(*T)) (res *runResult) {
	res = &runResult{}
	t := &T{seq: seq, rec: rec}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case overrunSignal:
			res.overrun = true
		case counterexampleSignal:
			res.failed = true
			res.seq = seq
			res.message = sig.msg
		case *ConfigError:
			panic(sig)
		default:
			res.failed = true
			res.seq = seq
			res.message = fmt.Sprintf("%v", r)
		}
	}()

	body(t)
	return res
}
