package prop

import (
	"testing"

	"github.com/ewhite/propcheck/choice"
)

func TestRunOnce_PassingBodyReturnsNoFailure(t *testing.T) {
	res := runOnce(choice.FromBytes([]byte{1, 2, 3}), nil, func(t *T) {
		t.Draw(1)
	})
	if res.failed || res.overrun {
		t.Fatalf("expected neither failed nor overrun, got %+v", res)
	}
}

func TestRunOnce_AssertFailureIsCaught(t *testing.T) {
	res := runOnce(choice.FromBytes([]byte{0}), nil, func(t *T) {
		t.Assert(false, "boom %d", 7)
	})
	if !res.failed {
		t.Fatalf("expected failed=true")
	}
	if res.message != "boom 7" {
		t.Fatalf("unexpected message: %q", res.message)
	}
}

func TestRunOnce_OverrunIsCaught(t *testing.T) {
	res := runOnce(choice.FromBytes([]byte{1}), nil, func(t *T) {
		t.Draw(5)
	})
	if !res.overrun {
		t.Fatalf("expected overrun=true, got %+v", res)
	}
	if res.failed {
		t.Fatalf("overrun must not also be reported as failed")
	}
}

func TestRunOnce_ArbitraryPanicIsTreatedAsFailure(t *testing.T) {
	res := runOnce(choice.FromBytes([]byte{0}), nil, func(t *T) {
		panic("unexpected crash")
	})
	if !res.failed {
		t.Fatalf("expected an arbitrary panic to count as a failure")
	}
}

func TestRunOnce_ConfigErrorPropagatesSynchronously(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected *ConfigError to propagate out of runOnce")
		}
		if _, ok := r.(*ConfigError); !ok {
			t.Fatalf("expected *ConfigError, got %T", r)
		}
	}()
	runOnce(choice.FromBytes([]byte{0}), nil, func(t *T) {
		panic(&ConfigError{Msg: "bad config"})
	})
}
