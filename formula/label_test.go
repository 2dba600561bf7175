package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLabels(t *testing.T) {
	ts := Transforms{Y: Log, BMI: Identity, CHO: Log1p, TDD: Reciprocal}
	c := Coefficients{Intercept: 1.5, BMI: -0.25, CHO: 0.75, TDD: 2}

	labels := NewLabels(KindCarbRatio, ts, c)

	require.Equal(t,
		`\text{CIR}_{\text{term}} = \beta_0 + \beta_1 \text{BMI}_{\text{term}} + \beta_2 \text{CHO}_{\text{term}} + \beta_3 \text{TDD}_{\text{term}}`,
		labels.Template)
	require.Equal(t, `CIR_{\text{AACE}} = \frac{450}{TDD}`, labels.ReferenceTeX)
	require.Equal(t, "CIR = 450 / TDD", labels.ReferencePlain)
	require.Equal(t,
		`\ln(\text{CIR}) = 1.500 + -0.250\ \text{BMI} + 0.75\ \ln(\text{CHO} + 1) + 2.000\ \frac{1}{\text{TDD}}`,
		labels.TeX)
	require.Equal(t,
		"ln (CIR) = 1.500 + -0.250*BMI + 0.75*ln (CHO + 1) + 2.000*1/TDD",
		labels.Plain)
}

func TestNewLabels_Identity(t *testing.T) {
	labels := NewLabels(KindBasal, Transforms{TDD: Log1p}, Coefficients{TDD: 0.5})

	require.Equal(t, "BASAL = 0.000 + 0.000*BMI + 0.00*CHO + 0.500*ln (TDD + 1)", labels.Plain)
	require.Equal(t,
		`\text{BASAL} = 0.000 + 0.000\ \text{BMI} + 0.00\ \text{CHO} + 0.500\ \ln(\text{TDD} + 1)`,
		labels.TeX)
	require.Equal(t, "BASAL = 0.5 * TDD", labels.ReferencePlain)
}
