package candidate

import (
	"math"

	"github.com/arloliu/dosecurve/formula"
)

// Term is one named coefficient column of a candidate model.
type Term int

const (
	// TermIntercept is the constant term (column "X_intercept").
	TermIntercept Term = iota
	// TermBMI is the raw body-mass index (column "BMI").
	TermBMI
	// TermLogBMI is ln(BMI + 1) (column "log_BMI").
	TermLogBMI
	// TermCHO is the raw carbohydrate intake (column "CHO").
	TermCHO
	// TermLogCHO is ln(CHO + 1) (column "log_CHO").
	TermLogCHO
	// TermTDD is the raw total daily dose (column "TDD").
	TermTDD
	// TermLogTDD is ln(TDD + 1) (column "log_TDD").
	TermLogTDD
	// TermInvTDD is 1 / TDD (column "1/TDD").
	TermInvTDD
)

// Terms lists every term in evaluation order.
var Terms = []Term{TermIntercept, TermBMI, TermLogBMI, TermCHO, TermLogCHO, TermTDD, TermLogTDD, TermInvTDD}

var termColumns = map[Term]string{
	TermIntercept: "X_intercept",
	TermBMI:       "BMI",
	TermLogBMI:    "log_BMI",
	TermCHO:       "CHO",
	TermLogCHO:    "log_CHO",
	TermTDD:       "TDD",
	TermLogTDD:    "log_TDD",
	TermInvTDD:    "1/TDD",
}

// Column returns the results-file column holding the term's coefficient.
func (t Term) Column() string {
	if c, ok := termColumns[t]; ok {
		return c
	}

	return ""
}

// String returns the column name of the term.
func (t Term) String() string {
	return t.Column()
}

// TermFromColumn returns the term stored in a results-file column.
func TermFromColumn(column string) (Term, bool) {
	for t, c := range termColumns {
		if c == column {
			return t, true
		}
	}

	return Term(-1), false
}

// Swept reports whether the term's value varies along the TDD sweep.
func (t Term) Swept() bool {
	return t == TermTDD || t == TermLogTDD || t == TermInvTDD
}

// Value returns the transformed term value for the fixed inputs and a dose.
func (t Term) Value(fixed formula.FixedInputs, tdd float64) float64 {
	switch t {
	case TermIntercept:
		return 1
	case TermBMI:
		return fixed.BMI
	case TermLogBMI:
		return math.Log(fixed.BMI + 1)
	case TermCHO:
		return fixed.CHO
	case TermLogCHO:
		return math.Log(fixed.CHO + 1)
	case TermTDD:
		return tdd
	case TermLogTDD:
		return math.Log(tdd + 1)
	case TermInvTDD:
		return 1 / tdd
	default:
		return math.NaN()
	}
}
