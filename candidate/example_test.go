package candidate_test

import (
	"fmt"
	"log"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/formula"
)

// ExampleRank ranks two carb-ratio models against the AACE reference.
func ExampleRank() {
	rows := []candidate.Row{
		{
			Equation:     "CIR = 450.000*1/TDD",
			IsReference:  true,
			Coefficients: map[candidate.Term]float64{candidate.TermInvTDD: 450},
			MdAPE:        0.412,
			RMSE:         6.25,
		},
		{
			Equation:     "CIR = 4.000 + 0.100*TDD",
			Coefficients: map[candidate.Term]float64{candidate.TermIntercept: 4, candidate.TermTDD: 0.1},
			MdAPE:        0.318,
			RMSE:         5.5,
		},
		{
			Equation:     "CIR = 2.000 + 400.000*1/TDD",
			Coefficients: map[candidate.Term]float64{candidate.TermIntercept: 2, candidate.TermInvTDD: 400},
			MdAPE:        0.2,
			RMSE:         4.125,
		},
	}

	table, err := candidate.Rank(formula.KindCarbRatio, rows)
	if err != nil {
		log.Fatal(err)
	}
	for _, option := range table.Options() {
		fmt.Println(option)
	}

	best, err := table.Best()
	if err != nil {
		log.Fatal(err)
	}
	ref, sel := table.Curves(best, formula.CandidateSweep(100), formula.FixedInputs{BMI: 25, CHO: 250})
	fmt.Printf("TDD %.0f: AACE %.2f  selected %.2f\n", ref.X[9], ref.Y[9], sel.Y[9])

	// Output:
	// [1] CIR = 2.000 + 400.000*1/TDD [MdAPE: 0.200,  RMSE: 4.125]
	// [2] CIR = 4.000 + 0.100*TDD [MdAPE: 0.318,  RMSE: 5.500]
	// TDD 10: AACE 45.00  selected 42.00
}

// ExampleCompare finds where a linear model crosses the AACE carb ratio.
func ExampleCompare() {
	sweep := formula.CandidateSweep(formula.DefaultSweepMax)
	ref := formula.Curve{X: sweep.Floats(), Y: formula.ReferenceCurve(formula.KindCarbRatio, sweep)}
	sel := candidate.Evaluate(candidate.Row{
		Coefficients: map[candidate.Term]float64{candidate.TermTDD: 1},
	}, sweep, formula.FixedInputs{BMI: 25, CHO: 250})

	cmp, err := candidate.Compare(ref, sel)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("crossings: %.1f\n", cmp.Summary.Crossings)

	// Output:
	// crossings: [21.2]
}
