package formula

import "fmt"

// Display precision of each coefficient. CHO weights are shown with two
// decimals, the other weights with three.
const (
	interceptDecimals = 3
	bmiDecimals       = 3
	choDecimals       = 2
	tddDecimals       = 3
)

// Labels holds the display strings of an evaluation.
type Labels struct {
	// Template is the general model form in LaTeX.
	Template string
	// ReferenceTeX is the AACE reference formula in LaTeX.
	ReferenceTeX string
	// ReferencePlain is the AACE reference formula as plain text.
	ReferencePlain string
	// TeX is the fitted alternative formula in LaTeX.
	TeX string
	// Plain is the fitted alternative formula as plain text.
	Plain string
}

// NewLabels renders the typeset and plain-text labels for a selection.
func NewLabels(kind Kind, ts Transforms, c Coefficients) Labels {
	code := kind.String()

	return Labels{
		Template:       templateTeX(code),
		ReferenceTeX:   kind.ReferenceTeX(),
		ReferencePlain: kind.ReferencePlain(),
		TeX: fmt.Sprintf(`%s = %.*f + %.*f\ %s + %.*f\ %s + %.*f\ %s`,
			ts.Y.TeX(code),
			interceptDecimals, c.Intercept,
			bmiDecimals, c.BMI, ts.BMI.TeX("BMI"),
			choDecimals, c.CHO, ts.CHO.TeX("CHO"),
			tddDecimals, c.TDD, ts.TDD.TeX("TDD")),
		Plain: fmt.Sprintf("%s = %.*f + %.*f*%s + %.*f*%s + %.*f*%s",
			ts.Y.Plain(code),
			interceptDecimals, c.Intercept,
			bmiDecimals, c.BMI, ts.BMI.Plain("BMI"),
			choDecimals, c.CHO, ts.CHO.Plain("CHO"),
			tddDecimals, c.TDD, ts.TDD.Plain("TDD")),
	}
}

func templateTeX(code string) string {
	term := func(name string) string {
		return `\text{` + name + `}_{\text{term}}`
	}

	return fmt.Sprintf(`%s = \beta_0 + \beta_1 %s + \beta_2 %s + \beta_3 %s`,
		term(code), term("BMI"), term("CHO"), term("TDD"))
}
