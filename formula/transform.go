package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/dosecurve/errs"
)

// Transform is the functional form applied to one term of the linear model.
type Transform int

const (
	// Identity uses the raw value: x
	Identity Transform = iota
	// Log1p uses the shifted natural logarithm: ln(x + 1)
	Log1p
	// Reciprocal uses the inverse: 1 / x
	Reciprocal
	// Log models the dependent variable in log space: ln(y), back-transformed with exp.
	Log
)

var transformNames = map[Transform]string{
	Identity:   "identity",
	Log1p:      "log1p",
	Reciprocal: "reciprocal",
	Log:        "log",
}

// String returns the canonical name of the transform.
func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}

	return "unknown"
}

// Term identifies one variable of the linear model.
type Term int

const (
	// TermY is the dependent variable (the calculated kind).
	TermY Term = iota
	// TermBMI is the body-mass index covariate.
	TermBMI
	// TermCHO is the daily carbohydrate intake covariate.
	TermCHO
	// TermTDD is the swept total daily dose.
	TermTDD
)

var termNames = map[Term]string{
	TermY:   "Y",
	TermBMI: "BMI",
	TermCHO: "CHO",
	TermTDD: "TDD",
}

// String returns the short name of the term.
func (t Term) String() string {
	if name, ok := termNames[t]; ok {
		return name
	}

	return "unknown"
}

// Allowed returns the transforms a term accepts, in menu order.
func (t Term) Allowed() []Transform {
	switch t {
	case TermY:
		return []Transform{Identity, Log}
	case TermBMI, TermCHO:
		return []Transform{Identity, Log1p}
	case TermTDD:
		return []Transform{Identity, Log1p, Reciprocal}
	default:
		return nil
	}
}

// Allows reports whether the term accepts the transform.
func (t Term) Allows(tr Transform) bool {
	for _, a := range t.Allowed() {
		if a == tr {
			return true
		}
	}

	return false
}

// transformAliases maps normalized labels to transforms; term-specific labels
// such as "ln (BMI + 1)" or "1/TDD" are matched after substituting the term name with "x".
var transformAliases = map[string]Transform{
	"":           Identity,
	"identity":   Identity,
	"linear":     Identity,
	"none":       Identity,
	"x":          Identity,
	"log1p":      Log1p,
	"ln(x+1)":    Log1p,
	"log(x+1)":   Log1p,
	"reciprocal": Reciprocal,
	"inverse":    Reciprocal,
	"1/x":        Reciprocal,
	"log":        Log,
	"ln":         Log,
	"ln(x)":      Log,
	"log(x)":     Log,
}

// ParseTransform parses a transform label for the given term.
//
// Besides canonical names it accepts the menu labels of the explore view
// ("BMI", "ln (BMI + 1)", "1/TDD", "ln (CIR)"). A bare "ln"/"log" means
// Log for the dependent variable and Log1p for the covariates.
func ParseTransform(term Term, label string) (Transform, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(label), ""))
	if term == TermY {
		for _, code := range kindCodes {
			norm = strings.ReplaceAll(norm, strings.ToLower(code), "x")
		}
	} else if name, ok := termNames[term]; ok {
		norm = strings.ReplaceAll(norm, strings.ToLower(name), "x")
	}

	tr, ok := transformAliases[norm]
	if !ok {
		return Identity, fmt.Errorf("%w: %q for %s", errs.ErrInvalidTransform, label, term)
	}

	if term != TermY && tr == Log {
		tr = Log1p
	}
	if term == TermY && tr == Log1p {
		return Identity, fmt.Errorf("%w: %q for %s", errs.ErrInvalidTransform, label, term)
	}
	if !term.Allows(tr) {
		return Identity, fmt.Errorf("%w: %s not allowed for %s", errs.ErrInvalidTransform, tr, term)
	}

	return tr, nil
}

// Apply applies the transform to a covariate value.
//
// Log is a dependent-variable transform and is applied by the evaluator as
// a back-transform; applying it to a covariate returns NaN.
func (t Transform) Apply(x float64) float64 {
	switch t {
	case Identity:
		return x
	case Log1p:
		return math.Log(x + 1)
	case Reciprocal:
		return 1 / x
	case Log:
		return math.NaN()
	default:
		return math.NaN()
	}
}

// Plain returns the plain-text label of the transform applied to a variable name,
// e.g. "ln (BMI + 1)" or "1/TDD".
func (t Transform) Plain(name string) string {
	switch t {
	case Log1p:
		return "ln (" + name + " + 1)"
	case Reciprocal:
		return "1/" + name
	case Log:
		return "ln (" + name + ")"
	default:
		return name
	}
}

// TeX returns the LaTeX label of the transform applied to a variable name.
func (t Transform) TeX(name string) string {
	text := `\text{` + name + `}`
	switch t {
	case Log1p:
		return `\ln(` + text + ` + 1)`
	case Reciprocal:
		return `\frac{1}{` + text + `}`
	case Log:
		return `\ln(` + text + `)`
	default:
		return text
	}
}

// Transforms holds the transform chosen for every term of the model.
type Transforms struct {
	Y   Transform
	BMI Transform
	CHO Transform
	TDD Transform
}

// Validate checks that every transform is allowed for its term.
func (ts Transforms) Validate() error {
	checks := []struct {
		term Term
		tr   Transform
	}{
		{TermY, ts.Y},
		{TermBMI, ts.BMI},
		{TermCHO, ts.CHO},
		{TermTDD, ts.TDD},
	}
	for _, c := range checks {
		if !c.term.Allows(c.tr) {
			return fmt.Errorf("%w: %s not allowed for %s", errs.ErrInvalidTransform, c.tr, c.term)
		}
	}

	return nil
}

// Coefficients are the four weights of the linear model.
//
// The struct is passed by value so an evaluation never observes later edits.
type Coefficients struct {
	Intercept float64 `yaml:"intercept" json:"intercept"`
	BMI       float64 `yaml:"bmi" json:"bmi"`
	CHO       float64 `yaml:"cho" json:"cho"`
	TDD       float64 `yaml:"tdd" json:"tdd"`
}

func (c Coefficients) vector() []float64 {
	return []float64{c.Intercept, c.BMI, c.CHO, c.TDD}
}
