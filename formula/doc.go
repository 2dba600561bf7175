// Package formula evaluates the AACE insulin dosing formulas and user-built
// alternatives over a swept total daily dose (TDD).
//
// # Model
//
// For a calculation kind (basal dose, carb-to-insulin ratio or insulin
// sensitivity factor) the reference formula is fixed:
//
//	BASAL = 0.5 * TDD
//	CIR   = 450 / TDD
//	ISF   = 1700 / TDD
//
// The alternative formula is a linear model over three terms, each with a
// selectable functional form:
//
//	Y_term = β0 + β1·BMI_term + β2·CHO_term + β3·TDD_term
//
// where BMI and CHO use x or ln(x + 1), TDD uses x, ln(x + 1) or 1/x, and
// Y_term is either Y or ln(Y). The linear score is clamped to zero and, for
// ln(Y), back-transformed with exp.
//
// # Usage
//
//	p := formula.Params{
//	    Kind:         formula.KindCarbRatio,
//	    Transforms:   formula.Transforms{TDD: formula.Reciprocal},
//	    Coefficients: formula.Coefficients{TDD: 450},
//	    Sweep:        formula.NewSweep(formula.KindCarbRatio, formula.Reciprocal, 500),
//	    Fixed:        formula.FixedInputs{BMI: 25, CHO: 250},
//	}
//	eval, err := formula.Evaluate(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(eval.Labels.Plain)
//
// Sweeps are validated before evaluation: zero is never evaluated under a
// reciprocal or logarithmic dose transform, nor for the ratio kinds.
package formula
