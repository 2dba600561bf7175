// Package dosecurve compares the AACE insulin dosing formulas with
// alternative regression models over a swept total daily dose (TDD).
//
// Two views are supported: exploring a user-built formula (package formula)
// and comparing precomputed models read from results files (packages results
// and candidate). Both produce dose curves that package chart renders.
//
// # Basic Usage
//
// Exploring an alternative carb-to-insulin ratio:
//
//	import "github.com/arloliu/dosecurve"
//
//	eval, _ := dosecurve.Explore(formula.KindCarbRatio,
//	    formula.Transforms{TDD: formula.Reciprocal},
//	    formula.Coefficients{Intercept: 2, TDD: 400},
//	    formula.FixedInputs{BMI: 25, CHO: 250})
//	fmt.Println(eval.Labels.Plain)
//
// Comparing the best precomputed insulin sensitivity model:
//
//	table, _ := dosecurve.LoadResults("test_eval_results", formula.KindSensitivity)
//	cmp, _ := dosecurve.CompareRank(table, 1, formula.FixedInputs{BMI: 25, CHO: 250})
//	fmt.Println(cmp.Summary.Crossings)
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common
// use cases. For fine-grained control use the formula, candidate, results
// and chart packages directly.
package dosecurve

import (
	"io"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/chart"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/internal/hash"
	"github.com/arloliu/dosecurve/results"
)

// Explore evaluates a user-built formula against the AACE reference over the
// default sweep of the kind.
func Explore(kind formula.Kind, ts formula.Transforms, c formula.Coefficients, fixed formula.FixedInputs) (*formula.Evaluation, error) {
	return formula.Evaluate(formula.Params{
		Kind:         kind,
		Transforms:   ts,
		Coefficients: c,
		Sweep:        formula.NewSweep(kind, ts.TDD, formula.DefaultSweepMax),
		Fixed:        fixed,
	})
}

// LoadResults loads and ranks the results file of a kind from dir.
func LoadResults(dir string, kind formula.Kind, opts ...results.LoaderOption) (*candidate.Table, error) {
	loader, err := results.NewLoader(append([]results.LoaderOption{results.WithDir(dir)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return loader.Load(kind)
}

// Comparison bundles the curves of a results comparison with its summary.
type Comparison struct {
	Selected  candidate.RankedRow
	Reference formula.Curve
	Curve     formula.Curve
	*candidate.Comparison
}

// CompareRank compares the candidate of the given rank with the AACE
// reference over the default results sweep.
func CompareRank(table *candidate.Table, rank int, fixed formula.FixedInputs) (*Comparison, error) {
	selected, err := table.ByRank(rank)
	if err != nil {
		return nil, err
	}

	ref, sel := table.Curves(selected, formula.CandidateSweep(formula.DefaultSweepMax), fixed)
	cmp, err := candidate.Compare(ref, sel)
	if err != nil {
		return nil, err
	}

	return &Comparison{Selected: selected, Reference: ref, Curve: sel, Comparison: cmp}, nil
}

// Figure returns the chart of the comparison.
func (c *Comparison) Figure(kind formula.Kind) chart.Figure {
	return chart.ResultsFigure(kind, c.Reference, c.Curve, c.Selected)
}

// Render draws fig with the named renderer ("plot", "gochart" or "json").
func Render(w io.Writer, fig chart.Figure, renderer string, opts ...chart.Option) error {
	r, err := chart.NewRenderer(renderer, opts...)
	if err != nil {
		return err
	}

	return r.Render(w, fig)
}

// CandidateID returns the stable ID of an equation label, as used to select
// a candidate independently of its rank.
func CandidateID(equation string) uint64 {
	return hash.EquationID(equation)
}
