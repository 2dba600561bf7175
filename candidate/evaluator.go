package candidate

import (
	"math"

	"github.com/arloliu/dosecurve/formula"
	"gonum.org/v1/gonum/floats"
)

// Evaluate computes a candidate model's curve over the sweep.
//
// The curve is the sparse linear model
//
//	y = Σ coefficient_i · term_i
//
// over the terms whose coefficient is present and non-zero; every other term
// contributes exactly 0, even where its value is undefined. Log-space models
// are exponentiated. Unlike formula.Evaluate the score is not clamped.
func Evaluate(row Row, sweep formula.Sweep, fixed formula.FixedInputs) formula.Curve {
	x := sweep.Floats()
	y := make([]float64, len(x))
	values := make([]float64, len(x))

	for _, t := range row.ActiveTerms() {
		coef, _ := row.Coefficient(t)
		if !t.Swept() {
			floats.AddConst(coef*t.Value(fixed, 0), y)
			continue
		}

		for i, d := range x {
			values[i] = t.Value(fixed, d)
		}
		floats.AddScaled(y, coef, values)
	}

	if row.IsLogY {
		for i, v := range y {
			y[i] = math.Exp(v)
		}
	}

	return formula.Curve{X: x, Y: y}
}
