package gen

import (
	"testing"

	"github.com/ewhite/propcheck/prop"
)

func TestSliceOf_ElementsInRange(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 30
	prop.Check(t, cfg, func(pt *prop.T) {
		xs := SliceOf(pt, "xs", IntRangeGen(0, 9))
		for _, x := range xs {
			pt.Assert(x >= 0 && x <= 9, "element out of range: %d", x)
		}
	})
}

func TestVectorOf_FixedLength(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 100
	cfg.Seed = 31
	prop.Check(t, cfg, func(pt *prop.T) {
		xs := VectorOf(pt, "xs", 5, BoolGen)
		pt.Assert(len(xs) == 5, "expected length 5, got %d", len(xs))
	})
}

func TestVectorOf_NegativeNPanicsConfigError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for n < 0")
		}
		if _, ok := r.(*prop.ConfigError); !ok {
			t.Fatalf("expected *prop.ConfigError, got %T (%v)", r, r)
		}
	}()
	cfg := prop.Default()
	cfg.MaxExamples = 1
	cfg.Seed = 32
	prop.Check(t, cfg, func(pt *prop.T) {
		VectorOf(pt, "xs", -1, BoolGen)
	})
}

func TestSliceOfGen_Unnamed(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 100
	cfg.Seed = 33
	g := SliceOfGen(IntRangeGen(1, 3))
	prop.Check(t, cfg, func(pt *prop.T) {
		xs := g(pt)
		for _, x := range xs {
			pt.Assert(x >= 1 && x <= 3, "element out of range: %d", x)
		}
	})
}

func TestVectorOfGen_FixedLength(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 100
	cfg.Seed = 34
	g := VectorOfGen(3, BoolGen)
	prop.Check(t, cfg, func(pt *prop.T) {
		xs := g(pt)
		pt.Assert(len(xs) == 3, "expected length 3, got %d", len(xs))
	})
}
