// Package choice implements the byte-sequence choice representation that
// the rest of propcheck is built on. All randomness used by a single
// predicate invocation flows through one Sequence: generators never see a
// *rand.Rand directly, they only ever draw bytes from the ambient Sequence.
// That makes generators pure functions of the sequence and lets the
// shrinker work on plain bytes instead of typed values.
package choice

import (
	"errors"
	"math/rand"
)

// ErrOverrun is returned by Draw when a fixed-mode Sequence (one created by
// FromBytes, used during shrinking and replay) is asked for more bytes than
// it has left. It means the candidate byte sequence being tried does not
// reproduce whatever drove the original run.
var ErrOverrun = errors.New("choice: overrun")

// Interval marks the half-open byte range [Start, End) consumed by a single
// top-level call to Draw.
type Interval struct {
	Start, End int
}

// Len reports the number of bytes the interval spans.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Sequence is the central entity of the engine: a growable byte buffer, a
// read cursor, and the list of intervals each Draw call has produced so
// far.
//
// A Sequence created with New is in "generation" mode: Draw grows the
// buffer on demand with fresh random bytes. A Sequence created with
// FromBytes is in "fixed" mode, used for shrinking and replay: Draw never
// grows the buffer, and reading past the end is an overrun.
type Sequence struct {
	bytes     []byte
	cursor    int
	intervals []Interval
	fixed     bool
	rnd       *rand.Rand
}

// New creates an empty Sequence in generation mode. Bytes are minted lazily
// from rnd as generators draw them.
func New(rnd *rand.Rand) *Sequence {
	return &Sequence{rnd: rnd}
}

// FromBytes creates a Sequence in fixed mode over a copy of b, cursor at 0.
// Used to start a shrink candidate or a replay run from a known byte
// sequence.
func FromBytes(b []byte) *Sequence {
	return &Sequence{bytes: append([]byte(nil), b...), fixed: true}
}

// Draw reads n bytes starting at the cursor, advances the cursor by n, and
// records a new interval covering exactly those bytes. In generation mode
// the buffer is extended with fresh uniform random bytes as needed. In
// fixed mode, reading past the end of the buffer returns ErrOverrun and the
// Sequence is left unchanged.
func (s *Sequence) Draw(n int) ([]byte, error) {
	if n < 0 {
		panic("choice: negative draw length")
	}
	start := s.cursor
	end := start + n
	if s.fixed {
		if end > len(s.bytes) {
			return nil, ErrOverrun
		}
	} else {
		for len(s.bytes) < end {
			s.bytes = append(s.bytes, byte(s.rnd.Intn(256)))
		}
	}
	s.cursor = end
	s.intervals = append(s.intervals, Interval{Start: start, End: end})
	out := make([]byte, n)
	copy(out, s.bytes[start:end])
	return out, nil
}

// Cursor returns the current read position.
func (s *Sequence) Cursor() int { return s.cursor }

// Len returns the number of bytes currently backing the sequence.
func (s *Sequence) Len() int { return len(s.bytes) }

// Bytes returns a copy of the underlying byte buffer.
func (s *Sequence) Bytes() []byte { return append([]byte(nil), s.bytes...) }

// Intervals returns a copy of the recorded draw intervals, in draw order.
func (s *Sequence) Intervals() []Interval { return append([]Interval(nil), s.intervals...) }

// Rewind returns a new fixed-mode Sequence truncated to the bytes actually
// consumed (bytes[0:cursor]), cursor reset to 0, intervals retained. This is
// how a counterexample captured mid-run becomes a clean starting point for
// shrinking: everything the run drew is kept, anything it never touched is
// dropped.
func (s *Sequence) Rewind() *Sequence {
	return &Sequence{
		bytes:     append([]byte(nil), s.bytes[:s.cursor]...),
		cursor:    0,
		intervals: append([]Interval(nil), s.intervals...),
		fixed:     true,
	}
}

// ClearIntervals returns a copy with an empty interval list, same bytes and
// cursor and mode. Called before every run so that the run records its own
// fresh intervals rather than accumulating stale ones from a previous run
// over the same bytes.
func (s *Sequence) ClearIntervals() *Sequence {
	return &Sequence{
		bytes:  append([]byte(nil), s.bytes...),
		cursor: s.cursor,
		fixed:  s.fixed,
		rnd:    s.rnd,
	}
}

// WithBytes returns a copy with the entire byte buffer replaced by b,
// keeping cursor, intervals and mode. b is copied; the Sequence does not
// alias the caller's slice.
func (s *Sequence) WithBytes(b []byte) *Sequence {
	return &Sequence{
		bytes:     append([]byte(nil), b...),
		cursor:    s.cursor,
		intervals: append([]Interval(nil), s.intervals...),
		fixed:     s.fixed,
		rnd:       s.rnd,
	}
}

// SetByte returns a copy with bytes[i] = v.
func (s *Sequence) SetByte(i int, v byte) *Sequence {
	b := s.Bytes()
	b[i] = v
	return s.WithBytes(b)
}

// SetRange returns a copy with bytes[start:end] replaced by vals.
// len(vals) must equal end-start.
func (s *Sequence) SetRange(start, end int, vals []byte) *Sequence {
	if end-start != len(vals) {
		panic("choice: SetRange length mismatch")
	}
	b := s.Bytes()
	copy(b[start:end], vals)
	return s.WithBytes(b)
}
