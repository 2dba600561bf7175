package candidate

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/internal/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Comparison is the pointwise comparison of a candidate curve against the reference.
type Comparison struct {
	// X is the shared sweep.
	X []float64
	// Diff holds selected - reference at every point.
	Diff []float64
	// Ratio holds selected / reference at every point.
	Ratio []float64
	// Summary aggregates the pointwise differences.
	Summary Summary
}

// Summary aggregates a Comparison. Non-finite points are ignored.
type Summary struct {
	// MaxAbsDiff is the largest |selected - reference|.
	MaxAbsDiff float64
	// MaxAbsDiffAt is the TDD where MaxAbsDiff occurs.
	MaxAbsDiffAt float64
	// MeanAbsDiff is the mean |selected - reference|.
	MeanAbsDiff float64
	// MedianAbsPctDiff is the median of 100·|selected - reference| / |reference|.
	MedianAbsPctDiff float64
	// Crossings are the TDD values where the curves intersect, linearly
	// interpolated between sweep points.
	Crossings []float64
}

// Compare compares a selected curve against the reference over the same sweep.
//
// The stored MdAPE/RMSE of a candidate describe its test-set accuracy and are
// not recomputed here; this summary only describes how far the curves diverge.
func Compare(reference, selected formula.Curve) (*Comparison, error) {
	n := reference.Len()
	if n != selected.Len() || n != len(reference.X) || n != len(selected.X) {
		return nil, fmt.Errorf("%w: reference %d points, selected %d points",
			errs.ErrLengthMismatch, n, selected.Len())
	}
	if !floats.Equal(reference.X, selected.X) {
		return nil, fmt.Errorf("%w: curves use different sweeps", errs.ErrLengthMismatch)
	}

	cmp := &Comparison{
		X:     slices.Clone(reference.X),
		Diff:  make([]float64, n),
		Ratio: make([]float64, n),
	}
	if n == 0 {
		return cmp, nil
	}

	floats.SubTo(cmp.Diff, selected.Y, reference.Y)
	floats.DivTo(cmp.Ratio, selected.Y, reference.Y)
	cmp.Summary = summarize(cmp.X, cmp.Diff, reference.Y)

	return cmp, nil
}

func summarize(x, diff, ref []float64) Summary {
	var s Summary

	abs := make([]float64, 0, len(diff))
	absX := make([]float64, 0, len(diff))
	pct := make([]float64, 0, len(diff))
	for i, d := range diff {
		if !finite(d) {
			continue
		}
		abs = append(abs, math.Abs(d))
		absX = append(absX, x[i])
		if ref[i] != 0 && finite(ref[i]) {
			pct = append(pct, 100*math.Abs(d)/math.Abs(ref[i]))
		}
	}

	if len(abs) > 0 {
		idx := floats.MaxIdx(abs)
		s.MaxAbsDiff = abs[idx]
		s.MaxAbsDiffAt = absX[idx]
		s.MeanAbsDiff = stat.Mean(abs, nil)
	}
	s.MedianAbsPctDiff = median(pct)
	s.Crossings = Crossings(x, diff)

	return s
}

// Crossings returns the x positions where diff changes sign or is exactly zero.
func Crossings(x, diff []float64) []float64 {
	var out []float64
	for i := range diff {
		d1 := diff[i]
		if !finite(d1) {
			continue
		}
		if d1 == 0 {
			out = append(out, x[i])
			continue
		}
		if i == 0 || !finite(diff[i-1]) || diff[i-1] == 0 {
			continue
		}
		d0 := diff[i-1]
		if (d0 < 0) != (d1 < 0) {
			out = append(out, x[i-1]+d0/(d0-d1)*(x[i]-x[i-1]))
		}
	}

	return out
}

// median returns the median of values, averaging the two middle values for
// even lengths; 0 for an empty slice. values is not modified.
//
// stat.Quantile is not used: at p = 0.5 its Empirical kind returns the lower
// middle value and LinInterp interpolates below the middle, so neither gives
// the midpoint median reported next to the stored MdAPE.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted, cleanup := pool.GetFloat64Slice(len(values))
	defer cleanup()
	copy(sorted, values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return stat.Mean(sorted[mid-1:mid+1], nil)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
