package gen

import (
	"testing"

	"github.com/ewhite/propcheck/prop"
)

func TestInt_WithinBand(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 1
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Int(pt, "n")
		pt.Assert(v >= -100 && v <= 100, "Int out of band: %d", v)
	})
}

func TestIntRange_WithinBounds(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 2
	prop.Check(t, cfg, func(pt *prop.T) {
		v := IntRange(pt, "n", 5, 15)
		pt.Assert(v >= 5 && v <= 15, "IntRange out of bounds: %d", v)
	})
}

func TestIntRange_InvalidBoundsPanicsConfigError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for lo >= hi")
		}
		if _, ok := r.(*prop.ConfigError); !ok {
			t.Fatalf("expected *prop.ConfigError, got %T (%v)", r, r)
		}
	}()
	cfg := prop.Default()
	cfg.MaxExamples = 1
	cfg.Seed = 3
	prop.Check(t, cfg, func(pt *prop.T) {
		IntRange(pt, "n", 10, 10)
	})
}

func TestIntRangeGen_WithinBounds(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 4
	g := IntRangeGen(-5, 5)
	prop.Check(t, cfg, func(pt *prop.T) {
		v := g(pt)
		pt.Assert(v >= -5 && v <= 5, "IntRangeGen out of bounds: %d", v)
	})
}

func TestInt64_WithinBand(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 5
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Int64(pt, "n")
		pt.Assert(v >= -100 && v <= 100, "Int64 out of band: %d", v)
	})
}

func TestInt64Range_WithinBounds(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 6
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Int64Range(pt, "n", -20, 20)
		pt.Assert(v >= -20 && v <= 20, "Int64Range out of bounds: %d", v)
	})
}

func TestInt64Range_InvalidBoundsPanicsConfigError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for lo >= hi")
		}
		if _, ok := r.(*prop.ConfigError); !ok {
			t.Fatalf("expected *prop.ConfigError, got %T (%v)", r, r)
		}
	}()
	cfg := prop.Default()
	cfg.MaxExamples = 1
	cfg.Seed = 7
	prop.Check(t, cfg, func(pt *prop.T) {
		Int64Range(pt, "n", 10, 10)
	})
}
