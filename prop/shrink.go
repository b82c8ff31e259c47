package prop

import (
	"math/big"

	"github.com/ewhite/propcheck/choice"
)

// shrinkState carries the remaining global budget threaded through every
// pass; the current best sequence is passed and returned by each pass
// instead. Each evaluated
// candidate — adopted or not — costs one unit of budget; once it reaches
// zero the shrinker stops wherever it is and returns the current best.
type shrinkState struct {
	budget int
}

func (s *shrinkState) spend() bool {
	if s.budget <= 0 {
		return false
	}
	s.budget--
	return true
}

// shrink runs the fixed pipeline of passes over a counterexample sequence
// once, in the order the spec prescribes: zero-interval, zero-byte,
// swap-intervals, shift-right, subtract-10, subtract-1. Each pass loops
// over its dimension to a local fixed point before the next pass begins;
// the pipeline itself is not re-entered. The global budget is the only
// termination guarantee across the whole pipeline.
func shrink(seq *choice.Sequence, maxShrinks int, body func(*T)) *choice.Sequence {
	st := &shrinkState{budget: maxShrinks}
	current := seq

	current = runToFixpoint(current, body, st, zeroIntervalStep)
	current = runToFixpoint(current, body, st, zeroByteStep)
	current = swapIntervalsPass(current, body, st)
	current = runToFixpoint(current, body, st, shiftRightStep)
	current = runToFixpoint(current, body, st, subtractStep(10))
	current = runToFixpoint(current, body, st, subtractStep(1))

	return current
}

// step produces a candidate sequence for position i of the current
// sequence's dimension (intervals, for most passes; raw byte offsets, for
// the zero-byte pass), or nil if there is no valid reduction at i. count
// reports how many positions the current sequence has along that
// dimension.
type step struct {
	count     func(seq *choice.Sequence) int
	candidate func(seq *choice.Sequence, i int) *choice.Sequence
}

// tryCandidate clears the candidate's stale intervals, spends one unit of
// budget, and re-runs the predicate. It returns the adopted sequence
// (rewound to the bytes the re-run actually consumed, carrying the
// intervals that re-run just recorded) and whether anything changed.
func tryCandidate(body func(*T), st *shrinkState, cand *choice.Sequence) (*choice.Sequence, bool) {
	if !st.spend() {
		return nil, false
	}
	res := runOnce(cand.ClearIntervals(), nil, body)
	if !res.failed {
		return nil, false
	}
	return res.seq.Rewind(), true
}

// runToFixpoint walks a step's dimension from the start every time an edit
// is adopted (an adopted edit can change both the byte values and the
// number of positions available), stopping when a full scan makes no
// change or the budget runs out.
func runToFixpoint(seq *choice.Sequence, body func(*T), st *shrinkState, s step) *choice.Sequence {
	for {
		changed := false
		i := 0
		for i < s.count(seq) {
			if st.budget <= 0 {
				return seq
			}
			cand := s.candidate(seq, i)
			if cand == nil {
				i++
				continue
			}
			if next, ok := tryCandidate(body, st, cand); ok {
				seq = next
				changed = true
				i = 0
				continue
			}
			i++
		}
		if !changed {
			return seq
		}
	}
}

// --- pass 1: zero-interval ---

var zeroIntervalStep = step{
	count: func(seq *choice.Sequence) int { return len(seq.Intervals()) },
	candidate: func(seq *choice.Sequence, i int) *choice.Sequence {
		ivs := seq.Intervals()
		if i >= len(ivs) {
			return nil
		}
		iv := ivs[i]
		if iv.Len() == 0 || allZero(seq.Bytes()[iv.Start:iv.End]) {
			return nil
		}
		return seq.SetRange(iv.Start, iv.End, make([]byte, iv.Len()))
	},
}

// --- pass 2: zero-byte ---

var zeroByteStep = step{
	count: func(seq *choice.Sequence) int { return seq.Len() },
	candidate: func(seq *choice.Sequence, i int) *choice.Sequence {
		b := seq.Bytes()
		if i >= len(b) || b[i] == 0 {
			return nil
		}
		return seq.SetByte(i, 0)
	},
}

// --- pass 3: swap-intervals ---

// swapIntervalsPass normalizes the order of equal-length intervals so the
// lexicographically smaller one appears first, e.g. shrinking a displayed
// [7, 0] down to [0, 7]. It does not bridge intervals of unequal length:
// only pairs of equal-length intervals are ever compared or swapped.
func swapIntervalsPass(seq *choice.Sequence, body func(*T), st *shrinkState) *choice.Sequence {
	for {
		changed := false
	scan:
		for {
			ivs := seq.Intervals()
			bs := seq.Bytes()
			for i := 0; i < len(ivs); i++ {
				for j := i + 1; j < len(ivs); j++ {
					if ivs[i].Len() != ivs[j].Len() {
						continue
					}
					bi := bs[ivs[i].Start:ivs[i].End]
					bj := bs[ivs[j].Start:ivs[j].End]
					if !lexLess(bj, bi) {
						continue
					}
					if st.budget <= 0 {
						return seq
					}
					cand := swapIntervalBytes(seq, ivs[i], ivs[j])
					if next, ok := tryCandidate(body, st, cand); ok {
						seq = next
						changed = true
						continue scan
					}
				}
			}
			break
		}
		if !changed {
			return seq
		}
	}
}

func swapIntervalBytes(seq *choice.Sequence, a, b choice.Interval) *choice.Sequence {
	orig := seq.Bytes()
	next := append([]byte(nil), orig...)
	copy(next[a.Start:a.End], orig[b.Start:b.End])
	copy(next[b.Start:b.End], orig[a.Start:a.End])
	return seq.WithBytes(next)
}

// lexLess compares two equal-length byte slices from index 0 (most
// significant) onward; the first differing position decides, and equal
// slices are not less than one another.
func lexLess(x, y []byte) bool {
	for k := range x {
		if x[k] != y[k] {
			return x[k] < y[k]
		}
	}
	return false
}

// --- pass 4: shift-right ---

var shiftRightStep = step{
	count: func(seq *choice.Sequence) int { return len(seq.Intervals()) },
	candidate: func(seq *choice.Sequence, i int) *choice.Sequence {
		ivs := seq.Intervals()
		if i >= len(ivs) {
			return nil
		}
		iv := ivs[i]
		sub := seq.Bytes()[iv.Start:iv.End]
		if iv.Len() == 0 || allZero(sub) {
			return nil
		}
		v := new(big.Int).SetBytes(sub)
		v.Rsh(v, 1)
		return seq.SetRange(iv.Start, iv.End, v.FillBytes(make([]byte, iv.Len())))
	},
}

// --- passes 5 & 6: subtract-N ---

// subtractStep subtracts amount from an interval's big-endian integer
// value, saturating at zero, but never adopts an edit that would turn a
// nonzero interval into an all-zero one (the zero-interval pass already
// tried that reduction and it failed to reproduce, or it would have been
// adopted there).
func subtractStep(amount int64) step {
	return step{
		count: func(seq *choice.Sequence) int { return len(seq.Intervals()) },
		candidate: func(seq *choice.Sequence, i int) *choice.Sequence {
			ivs := seq.Intervals()
			if i >= len(ivs) {
				return nil
			}
			iv := ivs[i]
			sub := seq.Bytes()[iv.Start:iv.End]
			if iv.Len() == 0 || allZero(sub) {
				return nil
			}
			v := new(big.Int).SetBytes(sub)
			v.Sub(v, big.NewInt(amount))
			if v.Sign() < 0 {
				v.SetInt64(0)
			}
			if v.Sign() == 0 {
				return nil
			}
			next := v.FillBytes(make([]byte, iv.Len()))
			if bytesEqual(next, sub) {
				return nil
			}
			return seq.SetRange(iv.Start, iv.End, next)
		},
	}
}

func allZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
