package formula

import "math"

// HoursPerDay converts a daily basal dose into an hourly basal rate.
const HoursPerDay = 24

// Curve is a dependent-variable sequence aligned with a sweep.
type Curve struct {
	// X holds the swept TDD values.
	X []float64
	// Y holds the evaluated values, one per X.
	Y []float64
	// Hourly holds round(Y/24, 2) for basal curves and is nil otherwise.
	Hourly []float64
}

// Len returns the number of points of the curve.
func (c Curve) Len() int {
	return len(c.Y)
}

// HourlyRate converts daily basal doses into hourly rates rounded to 2 decimals.
//
// Rounding is half-to-even so displayed rates match the reference dashboards.
func HourlyRate(daily []float64) []float64 {
	out := make([]float64, len(daily))
	for i, v := range daily {
		out[i] = Round(v/HoursPerDay, 2)
	}

	return out
}

// Round rounds v to the given number of decimals, half to even.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	scale := math.Pow(10, float64(decimals))

	return math.RoundToEven(v*scale) / scale
}
