package candidate

import (
	"fmt"
	"math"

	"github.com/arloliu/dosecurve/internal/hash"
)

// Row is one precomputed model read from a results file.
type Row struct {
	// Equation is the model's label with fitted coefficients.
	Equation string
	// IsReference marks the AACE reference model.
	IsReference bool
	// IsLogY marks models fitted on ln(Y); they are back-transformed with exp.
	IsLogY bool
	// Coefficients holds the parseable coefficient cells; absent terms are missing keys.
	Coefficients map[Term]float64
	// MdAPE is the stored median absolute percentage error on the test set.
	MdAPE float64
	// RMSE is the stored root-mean-square error on the test set.
	RMSE float64
}

// ID returns the stable candidate ID of the row's equation.
func (r Row) ID() uint64 {
	return hash.EquationID(r.Equation)
}

// Coefficient returns the coefficient of a term and whether it contributes.
//
// A term contributes only when its cell was present, numeric, non-NaN and non-zero.
func (r Row) Coefficient(t Term) (float64, bool) {
	c, ok := r.Coefficients[t]
	if !ok || math.IsNaN(c) || c == 0 {
		return 0, false
	}

	return c, true
}

// ActiveTerms returns the contributing terms in evaluation order.
func (r Row) ActiveTerms() []Term {
	var out []Term
	for _, t := range Terms {
		if _, ok := r.Coefficient(t); ok {
			out = append(out, t)
		}
	}

	return out
}

// String returns a short summary of the row.
func (r Row) String() string {
	return fmt.Sprintf("Row{Equation: %s, MdAPE: %.3f, RMSE: %.3f, LogY: %t}",
		r.Equation, r.MdAPE, r.RMSE, r.IsLogY)
}
