package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/chart"
	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/results"
	"go.uber.org/zap"
)

func runResults(a *app, args []string) error {
	fs := a.newFlagSet("results")
	var (
		kindCode string
		rank     int
		id       string
		combo    string
		fixed    formula.FixedInputs
		list     bool
		out      string
	)
	fs.StringVar(&kindCode, "kind", "BASAL", "calculation kind: BASAL, CIR or ISF")
	fs.IntVar(&rank, "rank", 1, "rank of the model to compare (1 is the lowest MdAPE)")
	fs.StringVar(&id, "id", "", "hexadecimal candidate ID of the model to compare (overrides --rank)")
	fs.StringVar(&combo, "combo", "", `BMI/CHO combination label, e.g. "BMI: 25.0, CHO: 250"`)
	fs.Float64Var(&fixed.BMI, "bmi", formula.CatalogBMI[0], "body-mass index held fixed across the sweep (12, 25 or 45)")
	fs.Float64Var(&fixed.CHO, "cho", formula.CatalogCHO[0], "daily carbohydrate intake held fixed across the sweep (0, 250 or 500)")
	fs.BoolVar(&list, "list", false, "print every ranked model")
	fs.StringVar(&out, "out", "", "write the figure to this path")

	if err := a.setup(fs, args); err != nil {
		return err
	}

	kind, err := formula.ParseKind(kindCode)
	if err != nil {
		return err
	}
	if combo != "" {
		if fixed, err = formula.ParseFixedInputs(combo); err != nil {
			return err
		}
	}
	if err := fixed.CheckCatalog(); err != nil {
		return err
	}

	loader, err := results.NewLoader(append(a.cfg.LoaderOptions(), results.WithLogger(a.logger))...)
	if err != nil {
		return err
	}
	table, err := loader.Load(kind)
	if err != nil {
		return err
	}

	selected, err := selectCandidate(table, rank, id)
	if err != nil {
		return err
	}

	sweep := formula.CandidateSweep(a.cfg.Sweep.Max)
	ref, sel := table.Curves(selected, sweep, fixed)
	cmp, err := candidate.Compare(ref, sel)
	if err != nil {
		return err
	}
	a.logger.Debug("compared candidate",
		zap.Stringer("kind", kind),
		zap.Int("rank", selected.Rank),
		zap.String("id", formatID(selected.ID())),
		zap.Float64("max_abs_diff", cmp.Summary.MaxAbsDiff),
	)

	printResults(a, table, selected, fixed, cmp, list)

	if out == "" {
		return nil
	}

	return a.writeFigure(out, chart.ResultsFigure(kind, ref, sel, selected))
}

func selectCandidate(table *candidate.Table, rank int, id string) (candidate.RankedRow, error) {
	if id == "" {
		return table.ByRank(rank)
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(id), "0x"), 16, 64)
	if err != nil {
		return candidate.RankedRow{}, fmt.Errorf("%w: invalid id %q: %w", errs.ErrCandidateNotFound, id, err)
	}

	return table.ByID(v)
}

func formatID(id uint64) string {
	return fmt.Sprintf("%016x", id)
}

func printResults(a *app, table *candidate.Table, selected candidate.RankedRow, fixed formula.FixedInputs, cmp *candidate.Comparison, list bool) {
	w := a.stdout

	if list {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tModel")
		for _, c := range table.Candidates {
			fmt.Fprintf(tw, "%s\t%s\n", formatID(c.ID()), c.Option())
		}
		_ = tw.Flush()
		fmt.Fprintln(w)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\tModel\tEquation\tMdAPE\tRMSE")
	for _, r := range table.CompareRows(selected) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Index, r.Model, r.Equation, r.MdAPE, r.RMSE)
	}
	_ = tw.Flush()

	s := cmp.Summary
	fmt.Fprintf(w, "\nInputs: %s, TDD 1..%.0f\n", fixed.Label(), cmp.X[len(cmp.X)-1])
	fmt.Fprintf(w, "Max |difference|: %.3f at TDD %.0f\n", s.MaxAbsDiff, s.MaxAbsDiffAt)
	fmt.Fprintf(w, "Mean |difference|: %.3f\n", s.MeanAbsDiff)
	fmt.Fprintf(w, "Median |difference| %%: %.2f\n", s.MedianAbsPctDiff)
	if len(s.Crossings) == 0 {
		fmt.Fprintln(w, "Crossings: none")
	} else {
		parts := make([]string, len(s.Crossings))
		for i, x := range s.Crossings {
			parts[i] = strconv.FormatFloat(x, 'f', 2, 64)
		}
		fmt.Fprintf(w, "Crossings: TDD %s\n", strings.Join(parts, ", "))
	}

	kind := table.Kind
	fmt.Fprintf(w, "\nThis comparison demonstrates two different methods for calculating %s:\n", kind)
	fmt.Fprintf(w, "1. AACE method: %s\n   %s\n", kind.ReferencePlain(), kind.Explanation())
	fmt.Fprintf(w, "2. Selected method: %s\n   %s\n", selected.Equation, kind.SelectedMethodNote())
}
