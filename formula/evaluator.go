package formula

import (
	"fmt"
	"math"

	"github.com/arloliu/dosecurve/errs"
	"gonum.org/v1/gonum/mat"
)

// Params is one immutable set of selections for an evaluation.
type Params struct {
	Kind         Kind
	Transforms   Transforms
	Coefficients Coefficients
	Sweep        Sweep
	Fixed        FixedInputs
}

// Validate checks every precondition of Evaluate.
func (p Params) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidKind, int(p.Kind))
	}
	if err := p.Transforms.Validate(); err != nil {
		return err
	}
	if err := p.Fixed.Validate(p.Transforms); err != nil {
		return err
	}

	return p.Sweep.Validate(p.Kind, p.Transforms.TDD)
}

// Evaluation is the outcome of one evaluate-and-render cycle.
type Evaluation struct {
	Params Params
	// Reference is the AACE reference curve.
	Reference Curve
	// Curve is the user-built alternative curve.
	Curve Curve
	// Labels are the display strings of both formulas.
	Labels Labels
}

// Evaluate computes the reference and the user-built curves over the sweep.
//
// The user-built curve is the linear combination
//
//	β0 + β1·bmi_term + β2·cho_term + β3·tdd_term
//
// clamped to zero and, when the dependent variable is modelled in log space,
// back-transformed with exp. Basal curves also carry the hourly rate.
//
// Evaluate is pure: the same Params always yield bit-identical curves.
func Evaluate(p Params) (*Evaluation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	x := p.Sweep.Floats()
	ref := Curve{X: x, Y: ReferenceCurve(p.Kind, p.Sweep)}

	raw := linearCombination(p.Transforms, p.Coefficients, p.Sweep, p.Fixed)
	y := make([]float64, len(raw))
	for i, v := range raw {
		y[i] = math.Max(0, v)
		if p.Transforms.Y == Log {
			y[i] = math.Exp(y[i])
		}
	}
	curve := Curve{X: x, Y: y}

	if p.Kind.Hourly() {
		ref.Hourly = HourlyRate(ref.Y)
		curve.Hourly = HourlyRate(curve.Y)
	}

	return &Evaluation{
		Params:    p,
		Reference: ref,
		Curve:     curve,
		Labels:    NewLabels(p.Kind, p.Transforms, p.Coefficients),
	}, nil
}

// ReferenceCurve evaluates the kind's reference formula at every sweep point.
func ReferenceCurve(kind Kind, sweep Sweep) []float64 {
	out := make([]float64, sweep.Len())
	for i := range out {
		out[i] = kind.Reference(float64(sweep.At(i)))
	}

	return out
}

// designMatrix returns the n×4 matrix [1, bmi_term, cho_term, tdd_term] of a non-empty sweep.
func designMatrix(ts Transforms, sweep Sweep, fixed FixedInputs) *mat.Dense {
	n := sweep.Len()
	bmi := ts.BMI.Apply(fixed.BMI)
	cho := ts.CHO.Apply(fixed.CHO)

	design := mat.NewDense(n, 4, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		design.Set(i, 1, bmi)
		design.Set(i, 2, cho)
		design.Set(i, 3, ts.TDD.Apply(float64(sweep.At(i))))
	}

	return design
}

// linearCombination returns the unclamped model score at every sweep point.
func linearCombination(ts Transforms, c Coefficients, sweep Sweep, fixed FixedInputs) []float64 {
	design := designMatrix(ts, sweep, fixed)
	beta := mat.NewVecDense(4, c.vector())

	var score mat.VecDense
	score.MulVec(design, beta)

	return mat.Col(nil, 0, &score)
}
