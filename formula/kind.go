package formula

import (
	"fmt"
	"strings"

	"github.com/arloliu/dosecurve/errs"
)

// Kind is the calculation being compared against its AACE reference formula.
type Kind int

const (
	// KindBasal is the basal insulin dose: BASAL = 0.5 * TDD
	KindBasal Kind = iota
	// KindCarbRatio is the carb-to-insulin ratio: CIR = 450 / TDD
	KindCarbRatio
	// KindSensitivity is the insulin sensitivity factor: ISF = 1700 / TDD
	KindSensitivity
)

// Kinds lists every calculation kind in display order.
var Kinds = []Kind{KindBasal, KindCarbRatio, KindSensitivity}

// kindCodes maps Kind to the short codes used in file names and labels.
var kindCodes = map[Kind]string{
	KindBasal:       "BASAL",
	KindCarbRatio:   "CIR",
	KindSensitivity: "ISF",
}

// String returns the short code of the kind ("BASAL", "CIR" or "ISF").
func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}

	return "UNKNOWN"
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindCodes[k]
	return ok
}

// ParseKind returns the Kind for a code, case-insensitive.
func ParseKind(code string) (Kind, error) {
	for k, c := range kindCodes {
		if strings.EqualFold(c, strings.TrimSpace(code)) {
			return k, nil
		}
	}

	return Kind(-1), fmt.Errorf("%w: %q (supported: BASAL, CIR, ISF)", errs.ErrInvalidKind, code)
}

// Reference evaluates the AACE reference formula at the given total daily dose.
//
// CIR and ISF are undefined at tdd = 0; callers validate the sweep first.
func (k Kind) Reference(tdd float64) float64 {
	switch k {
	case KindBasal:
		return 0.5 * tdd
	case KindCarbRatio:
		return 450 / tdd
	case KindSensitivity:
		return 1700 / tdd
	default:
		panic(fmt.Sprintf("formula: unhandled kind %d", int(k)))
	}
}

// SweepStart returns the first TDD value of the default sweep for the kind.
func (k Kind) SweepStart() int {
	if k == KindBasal {
		return 0
	}

	return 1
}

// AxisTitle returns the y-axis title used when plotting the kind.
func (k Kind) AxisTitle() string {
	switch k {
	case KindBasal:
		return "Basal Insulin"
	case KindCarbRatio:
		return "Carb Insulin Ratio (CIR)"
	case KindSensitivity:
		return "Insulin Sensitivity Factor (ISF)"
	default:
		return k.String()
	}
}

// LogAxis reports whether the kind is plotted on a logarithmic y-axis.
func (k Kind) LogAxis() bool {
	return k == KindCarbRatio || k == KindSensitivity
}

// Hourly reports whether the kind carries a derived hourly rate (basal rate per hour).
func (k Kind) Hourly() bool {
	return k == KindBasal
}

// ReferencePlain returns the reference formula as plain text, e.g. "CIR = 450 / TDD".
func (k Kind) ReferencePlain() string {
	switch k {
	case KindBasal:
		return "BASAL = 0.5 * TDD"
	case KindCarbRatio:
		return "CIR = 450 / TDD"
	case KindSensitivity:
		return "ISF = 1700 / TDD"
	default:
		return ""
	}
}

// ReferenceTeX returns the reference formula in LaTeX notation.
func (k Kind) ReferenceTeX() string {
	switch k {
	case KindBasal:
		return `BASAL_{\text{AACE}} = 0.5\ TDD`
	case KindCarbRatio:
		return `CIR_{\text{AACE}} = \frac{450}{TDD}`
	case KindSensitivity:
		return `ISF_{\text{AACE}} = \frac{1700}{TDD}`
	default:
		return ""
	}
}

// Explanation describes how the reference method computes the kind.
func (k Kind) Explanation() string {
	switch k {
	case KindBasal:
		return "This is a simple linear relationship where Basal insulin is half of the Total Daily Dose."
	case KindCarbRatio, KindSensitivity:
		return "This method uses a constant (450 for CIR, 1700 for ISF) divided by the Total Daily Dose."
	default:
		return ""
	}
}

// NewMethodNote describes what the personalised alternative formula adds for the kind.
func (k Kind) NewMethodNote() string {
	switch k {
	case KindBasal:
		return "This method takes into account the patient's Body Mass Index (BMI) and daily " +
			"Carbohydrate intake (CHO) in addition to the Total Daily Dose."
	case KindCarbRatio:
		return "This new method incorporates the patient's Body Mass Index (BMI) and daily " +
			"Carbohydrate intake (CHO) along with the Total Daily Dose to provide a more personalized CIR calculation."
	case KindSensitivity:
		return "This new method takes into account the patient's Body Mass Index (BMI) and daily " +
			"Carbohydrate intake (CHO) along with the Total Daily Dose to calculate a more personalized ISF value."
	default:
		return ""
	}
}

// SelectedMethodNote describes a precomputed candidate model chosen from a
// results table.
func (k Kind) SelectedMethodNote() string {
	return "This method provides an alternative calculation for " + k.String() +
		" based on the Total Daily Dose, BMI, and CHO intake."
}
