// Package candidate evaluates and ranks precomputed regression models read
// from a results file.
//
// Each model is a sparse linear combination over a fixed set of named terms
// (intercept, BMI, ln(BMI+1), CHO, ln(CHO+1), TDD, ln(TDD+1), 1/TDD). Only
// terms with a present, non-zero coefficient contribute, so a model without a
// 1/TDD term is still finite where 1/TDD is not. Models fitted on ln(Y) are
// exponentiated; scores are never clamped.
//
// Candidates are ranked by their stored test-set MdAPE and compared with the
// AACE reference row of the same file:
//
//	table, err := candidate.Rank(formula.KindCarbRatio, rows)
//	if err != nil {
//	    return err
//	}
//	best, _ := table.Best()
//	ref, sel := table.Curves(best, formula.CandidateSweep(500), formula.FixedInputs{BMI: 25, CHO: 250})
//	cmp, err := candidate.Compare(ref, sel)
package candidate
