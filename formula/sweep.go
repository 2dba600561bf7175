package formula

import (
	"fmt"

	"github.com/arloliu/dosecurve/errs"
)

// DefaultSweepMax is the last total daily dose of the default sweep.
const DefaultSweepMax = 500

// Sweep is an ordered, strictly increasing sequence of integer TDD values.
type Sweep struct {
	values []int
}

// SweepRange returns the inclusive integer range [start, end].
// The sweep is empty when end < start.
func SweepRange(start, end int) Sweep {
	if end < start {
		return Sweep{}
	}

	values := make([]int, 0, end-start+1)
	for d := start; d <= end; d++ {
		values = append(values, d)
	}

	return Sweep{values: values}
}

// NewSweep returns the default sweep for a kind and dose transform, ending at max.
//
// Basal-rate sweeps start at 0 and the ratio kinds at 1. A reciprocal or
// logarithmic dose transform always starts at 1 so the sweep stays strictly
// positive under those transforms.
func NewSweep(kind Kind, tdd Transform, max int) Sweep {
	start := kind.SweepStart()
	if tdd == Reciprocal || tdd == Log1p {
		start = 1
	}

	return SweepRange(start, max)
}

// CandidateSweep returns the sweep used for results comparison: 1..max.
// Candidate models may carry a 1/TDD term, so the sweep never includes zero.
func CandidateSweep(max int) Sweep {
	return SweepRange(1, max)
}

// Len returns the number of points in the sweep.
func (s Sweep) Len() int {
	return len(s.values)
}

// At returns the i-th TDD value.
func (s Sweep) At(i int) int {
	return s.values[i]
}

// Values returns a copy of the TDD values.
func (s Sweep) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)

	return out
}

// Floats returns the TDD values as float64, ready to be used as a chart x-sequence.
func (s Sweep) Floats() []float64 {
	out := make([]float64, len(s.values))
	for i, d := range s.values {
		out[i] = float64(d)
	}

	return out
}

// Contains reports whether d is part of the sweep.
func (s Sweep) Contains(d int) bool {
	for _, v := range s.values {
		if v == d {
			return true
		}
		if v > d {
			return false
		}
	}

	return false
}

// Validate checks the sweep against the kind's reference formula and the dose transform.
//
// Zero is rejected for the ratio kinds, whose reference formula divides by TDD,
// and under a reciprocal or logarithmic dose transform. Negative doses are never valid.
func (s Sweep) Validate(kind Kind, tdd Transform) error {
	if len(s.values) == 0 {
		return errs.ErrEmptySweep
	}

	for i, d := range s.values {
		if i > 0 && d <= s.values[i-1] {
			return fmt.Errorf("%w: sweep not strictly increasing at index %d", errs.ErrSweepDomain, i)
		}
	}

	first := s.values[0]
	if first < 0 {
		return fmt.Errorf("%w: negative dose %d", errs.ErrSweepDomain, first)
	}
	if first == 0 {
		if kind != KindBasal {
			return fmt.Errorf("%w: %s reference is undefined at TDD = 0", errs.ErrSweepDomain, kind)
		}
		if tdd == Reciprocal || tdd == Log1p {
			return fmt.Errorf("%w: %s dose transform requires TDD > 0", errs.ErrSweepDomain, tdd)
		}
	}

	return nil
}
