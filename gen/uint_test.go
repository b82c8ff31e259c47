package gen

import (
	"testing"

	"github.com/ewhite/propcheck/prop"
)

func TestUint_WithinBand(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 11
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Uint(pt, "n")
		pt.Assert(v <= 100, "Uint out of band: %d", v)
	})
}

func TestUintRange_WithinBounds(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 12
	prop.Check(t, cfg, func(pt *prop.T) {
		v := UintRange(pt, "n", 3, 9)
		pt.Assert(v >= 3 && v <= 9, "UintRange out of bounds: %d", v)
	})
}

func TestUintRange_InvalidBoundsPanicsConfigError(t *testing.T) {
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
	cfg.Seed = 13
	prop.Check(t, cfg, func(pt *prop.T) {
		UintRange(pt, "n", 7, 7)
	})
}

func TestUint64_WithinBand(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 14
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Uint64(pt, "n")
		pt.Assert(v <= 100, "Uint64 out of band: %d", v)
	})
}

func TestUint64Range_WithinBounds(t *testing.T) {
	cfg := prop.Default()
	cfg.MaxExamples = 200
	cfg.Seed = 15
	prop.Check(t, cfg, func(pt *prop.T) {
		v := Uint64Range(pt, "n", 100, 200)
		pt.Assert(v >= 100 && v <= 200, "Uint64Range out of bounds: %d", v)
	})
}
