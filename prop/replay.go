package prop

import (
	"fmt"
	"strings"

	"github.com/ewhite/propcheck/choice"
)

// Binding is one named value harvested from a replay run: the name a
// generator was called with, and the value it decoded.
type Binding struct {
	Name  string
	Value any
}

// replayRecorder accumulates bindings as a predicate runs with replay
// active. It is nil (and Record is a no-op) during ordinary search and
// shrink runs — only the final replay run after shrinking pays the cost of
// recording names.
type replayRecorder struct {
	bindings []Binding
}

func (r *replayRecorder) append(name string, value any) {
	r.bindings = append(r.bindings, Binding{Name: name, Value: value})
}

// replay re-executes body once against seq with a replay recorder attached
// and returns whatever bindings were harvested before the run ended,
// whether it ended by failing, overrunning, or returning normally. It is
// always called on a sequence already known to fail, purely to harvest
// named values for the report; its own pass/fail outcome is discarded.
func replay(seq *choice.Sequence, body func(*T)) []Binding {
	rec := &replayRecorder{}
	runOnce(seq.ClearIntervals(), rec, body)
	return rec.bindings
}

// Report is the structured failure payload handed to the host harness's
// fail primitive (here, testing.T.Fatalf).
type Report struct {
	Message  string
	Bindings []Binding
}

// FormatBindings renders bindings as indented "name = value" lines (value
// in %#v form) for a failure message.
func FormatBindings(bindings []Binding) string {
	if len(bindings) == 0 {
		return "  (no named values)"
	}
	var b strings.Builder
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s = %#v\n", bind.Name, bind.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}
