package formula

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/dosecurve/errs"
)

var (
	// CatalogBMI lists the body-mass index values offered for comparison.
	CatalogBMI = []float64{12.0, 25.0, 45.0}
	// CatalogCHO lists the daily carbohydrate intakes offered for comparison.
	CatalogCHO = []float64{0, 250, 500}
)

// FixedInputs holds the covariates that stay constant across the sweep.
type FixedInputs struct {
	BMI float64 `yaml:"bmi" json:"bmi"`
	CHO float64 `yaml:"cho" json:"cho"`
}

// Catalog returns every BMI × CHO combination, BMI-major.
func Catalog() []FixedInputs {
	out := make([]FixedInputs, 0, len(CatalogBMI)*len(CatalogCHO))
	for _, bmi := range CatalogBMI {
		for _, cho := range CatalogCHO {
			out = append(out, FixedInputs{BMI: bmi, CHO: cho})
		}
	}

	return out
}

// Label renders the combination as shown in the selection list, e.g. "BMI: 12.0, CHO: 0".
func (f FixedInputs) Label() string {
	return "BMI: " + formatCatalogValue(f.BMI, true) + ", CHO: " + formatCatalogValue(f.CHO, false)
}

// formatCatalogValue keeps the catalog's display: BMI always has a decimal
// digit, CHO is shown as an integer when it is whole.
func formatCatalogValue(v float64, forceDecimal bool) string {
	if v == math.Trunc(v) {
		if forceDecimal {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}

		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFixedInputs parses a label produced by FixedInputs.Label.
func ParseFixedInputs(label string) (FixedInputs, error) {
	s := strings.ReplaceAll(label, "BMI:", "")
	s = strings.ReplaceAll(s, "CHO:", "")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return FixedInputs{}, fmt.Errorf("%w: %q", errs.ErrInvalidInput, label)
	}

	bmi, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return FixedInputs{}, fmt.Errorf("%w: bmi in %q: %w", errs.ErrInvalidInput, label, err)
	}
	cho, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return FixedInputs{}, fmt.Errorf("%w: cho in %q: %w", errs.ErrInvalidInput, label, err)
	}

	return FixedInputs{BMI: bmi, CHO: cho}, nil
}

// InCatalog reports whether f is one of the Catalog combinations.
func (f FixedInputs) InCatalog() bool {
	return slices.Contains(Catalog(), f)
}

// CheckCatalog rejects combinations outside Catalog with ErrInvalidInput.
func (f FixedInputs) CheckCatalog() error {
	if f.InCatalog() {
		return nil
	}

	return fmt.Errorf("%w: %s is not a catalog combination (BMI %v, CHO %v)",
		errs.ErrInvalidInput, f.Label(), CatalogBMI, CatalogCHO)
}

// Validate checks that the covariates can be transformed.
//
// Any finite value is accepted so library callers may evaluate covariates
// between the catalog points; the command line restricts input to the
// catalog with CheckCatalog.
func (f FixedInputs) Validate(ts Transforms) error {
	if math.IsNaN(f.BMI) || math.IsInf(f.BMI, 0) {
		return fmt.Errorf("%w: bmi %v", errs.ErrInvalidInput, f.BMI)
	}
	if math.IsNaN(f.CHO) || math.IsInf(f.CHO, 0) {
		return fmt.Errorf("%w: cho %v", errs.ErrInvalidInput, f.CHO)
	}
	if ts.BMI == Log1p && f.BMI <= -1 {
		return fmt.Errorf("%w: ln(BMI + 1) undefined for bmi %v", errs.ErrInvalidInput, f.BMI)
	}
	if ts.CHO == Log1p && f.CHO <= -1 {
		return fmt.Errorf("%w: ln(CHO + 1) undefined for cho %v", errs.ErrInvalidInput, f.CHO)
	}

	return nil
}
