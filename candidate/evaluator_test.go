package candidate

import (
	"math"
	"testing"

	"github.com/arloliu/dosecurve/formula"
	"github.com/stretchr/testify/require"
)

var testFixed = formula.FixedInputs{BMI: 25, CHO: 250}

func TestEvaluate_SparseTerms(t *testing.T) {
	row := Row{
		Equation: "CIR = 3 + 0.1*BMI + 0.5*TDD",
		Coefficients: map[Term]float64{
			TermIntercept: 3,
			TermBMI:       0.1,
			TermTDD:       0.5,
			TermInvTDD:    0,
			TermLogCHO:    math.NaN(),
		},
	}

	curve := Evaluate(row, formula.SweepRange(0, 10), testFixed)
	require.Len(t, curve.Y, 11)
	require.Nil(t, curve.Hourly)
	for i, x := range curve.X {
		// 1/TDD is +Inf at 0 but its coefficient is zero
		require.InDelta(t, 3+0.1*25+0.5*x, curve.Y[i], 1e-12, "tdd=%v", x)
		require.False(t, math.IsNaN(curve.Y[i]))
	}
}

func TestEvaluate_AllTerms(t *testing.T) {
	row := Row{Coefficients: map[Term]float64{
		TermIntercept: 1,
		TermBMI:       0.01,
		TermLogBMI:    0.2,
		TermCHO:       0.003,
		TermLogCHO:    0.04,
		TermTDD:       0.005,
		TermLogTDD:    0.6,
		TermInvTDD:    70,
	}}

	curve := Evaluate(row, formula.SweepRange(1, 50), testFixed)
	for i, x := range curve.X {
		expected := 1 + 0.01*25 + 0.2*math.Log(26) + 0.003*250 + 0.04*math.Log(251) +
			0.005*x + 0.6*math.Log(x+1) + 70/x
		require.InDelta(t, expected, curve.Y[i], 1e-9, "tdd=%v", x)
	}
}

func TestEvaluate_LogYNotClamped(t *testing.T) {
	row := Row{IsLogY: true, Coefficients: map[Term]float64{TermIntercept: -2, TermLogTDD: 0.1}}

	curve := Evaluate(row, formula.SweepRange(1, 5), testFixed)
	for i, x := range curve.X {
		require.InDelta(t, math.Exp(-2+0.1*math.Log(x+1)), curve.Y[i], 1e-12)
	}

	row = Row{Coefficients: map[Term]float64{TermIntercept: -10, TermTDD: 1}}
	curve = Evaluate(row, formula.SweepRange(1, 5), testFixed)
	require.Equal(t, -9.0, curve.Y[0])
}

func TestEvaluate_EmptySweep(t *testing.T) {
	curve := Evaluate(Row{Coefficients: map[Term]float64{TermIntercept: 1}}, formula.Sweep{}, testFixed)
	require.Equal(t, 0, curve.Len())
}

func TestRow_Coefficient(t *testing.T) {
	row := Row{Coefficients: map[Term]float64{TermBMI: 2, TermCHO: 0, TermTDD: math.NaN()}}

	c, ok := row.Coefficient(TermBMI)
	require.True(t, ok)
	require.Equal(t, 2.0, c)

	for _, term := range []Term{TermCHO, TermTDD, TermInvTDD} {
		_, ok = row.Coefficient(term)
		require.False(t, ok, term.String())
	}
	require.Equal(t, []Term{TermBMI}, row.ActiveTerms())
}

func TestTermFromColumn(t *testing.T) {
	for _, term := range Terms {
		got, ok := TermFromColumn(term.Column())
		require.True(t, ok)
		require.Equal(t, term, got)
	}

	_, ok := TermFromColumn("test_mdape")
	require.False(t, ok)
	require.Empty(t, Term(42).Column())
	require.True(t, math.IsNaN(Term(42).Value(testFixed, 1)))
}

func BenchmarkEvaluate(b *testing.B) {
	row := Row{IsLogY: true, Coefficients: map[Term]float64{
		TermIntercept: 1, TermLogBMI: 0.2, TermCHO: 0.003, TermLogTDD: 0.6, TermInvTDD: 7,
	}}
	sweep := formula.CandidateSweep(formula.DefaultSweepMax)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(row, sweep, testFixed)
	}
}
