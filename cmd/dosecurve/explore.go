package main

import (
	"fmt"
	"strconv"

	"github.com/arloliu/dosecurve/chart"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/internal/config"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// sampleDoses are the sweep points printed in the summary table.
var sampleDoses = []int{1, 10, 24, 50, 100, 200, 300, 500}

func runExplore(a *app, args []string) error {
	fs := a.newFlagSet("explore")
	var (
		ep     config.ExploreParams
		params string
		out    string
	)
	fs.StringVar(&ep.Kind, "kind", "BASAL", "calculation kind: BASAL, CIR or ISF")
	fs.StringVar(&ep.Terms.Y, "y-term", "", `dependent variable form, e.g. "CIR" or "ln (CIR)"`)
	fs.StringVar(&ep.Terms.BMI, "bmi-term", "", `BMI form: "BMI" or "ln (BMI + 1)"`)
	fs.StringVar(&ep.Terms.CHO, "cho-term", "", `CHO form: "CHO" or "ln (CHO + 1)"`)
	fs.StringVar(&ep.Terms.TDD, "tdd-term", "", `TDD form: "TDD", "ln (TDD + 1)" or "1/TDD"`)
	fs.Float64Var(&ep.Coefficients.Intercept, "beta0", 0, "intercept")
	fs.Float64Var(&ep.Coefficients.BMI, "beta1", 0, "BMI coefficient")
	fs.Float64Var(&ep.Coefficients.CHO, "beta2", 0, "CHO coefficient")
	fs.Float64Var(&ep.Coefficients.TDD, "beta3", 0, "TDD coefficient")
	fs.Float64Var(&ep.Fixed.BMI, "bmi", 25, "body-mass index held fixed across the sweep (12, 25 or 45)")
	fs.Float64Var(&ep.Fixed.CHO, "cho", 250, "daily carbohydrate intake held fixed across the sweep (0, 250 or 500)")
	fs.StringVar(&params, "params", "", "YAML file with the selection; explicit flags override it")
	fs.StringVar(&out, "out", "", "write the figure to this path")

	if err := a.setup(fs, args); err != nil {
		return err
	}

	if params != "" {
		fromFile, err := config.ReadExploreParams(params)
		if err != nil {
			return err
		}
		overrideExplore(fs, fromFile, &ep)
		ep = *fromFile
	}

	p, err := ep.Params(a.cfg.Sweep.Max)
	if err != nil {
		return err
	}
	if err := p.Fixed.CheckCatalog(); err != nil {
		return err
	}
	eval, err := formula.Evaluate(p)
	if err != nil {
		return err
	}
	a.logger.Debug("evaluated formula",
		zap.Stringer("kind", p.Kind),
		zap.Int("points", p.Sweep.Len()),
		zap.String("formula", eval.Labels.Plain),
	)

	printExplore(a, eval)

	if out == "" {
		return nil
	}

	return a.writeFigure(out, chart.ExploreFigure(eval))
}

// overrideExplore copies the explicitly set flags onto the values read from a file.
func overrideExplore(fs *pflag.FlagSet, dst, flags *config.ExploreParams) {
	set := map[string]func(){
		"kind":     func() { dst.Kind = flags.Kind },
		"y-term":   func() { dst.Terms.Y = flags.Terms.Y },
		"bmi-term": func() { dst.Terms.BMI = flags.Terms.BMI },
		"cho-term": func() { dst.Terms.CHO = flags.Terms.CHO },
		"tdd-term": func() { dst.Terms.TDD = flags.Terms.TDD },
		"beta0":    func() { dst.Coefficients.Intercept = flags.Coefficients.Intercept },
		"beta1":    func() { dst.Coefficients.BMI = flags.Coefficients.BMI },
		"beta2":    func() { dst.Coefficients.CHO = flags.Coefficients.CHO },
		"beta3":    func() { dst.Coefficients.TDD = flags.Coefficients.TDD },
		"bmi":      func() { dst.Fixed.BMI = flags.Fixed.BMI },
		"cho":      func() { dst.Fixed.CHO = flags.Fixed.CHO },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply()
		}
	})
}

func printExplore(a *app, eval *formula.Evaluation) {
	kind := eval.Params.Kind
	w := a.stdout

	fmt.Fprintf(w, "Template: %s\n", eval.Labels.Template)
	fmt.Fprintf(w, "AACE:     %s\n", eval.Labels.ReferencePlain)
	fmt.Fprintf(w, "New:      %s\n", eval.Labels.Plain)
	fmt.Fprintf(w, "Inputs:   %s\n\n", eval.Params.Fixed.Label())

	tw := newTable(w)
	header := "TDD\tAACE\tNew"
	if kind.Hourly() {
		header += "\tAACE BR\tNew BR"
	}
	fmt.Fprintln(tw, header)
	for _, d := range sampleDoses {
		i := indexOf(eval.Params.Sweep, d)
		if i < 0 {
			continue
		}
		line := strconv.Itoa(d) + "\t" + fixed2(eval.Reference.Y[i]) + "\t" + fixed2(eval.Curve.Y[i])
		if kind.Hourly() {
			line += "\t" + fixed2(eval.Reference.Hourly[i]) + "\t" + fixed2(eval.Curve.Hourly[i])
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nThis plot demonstrates two different methods for calculating %s:\n", kind)
	fmt.Fprintf(w, "  1. AACE method: %s\n     %s\n", kind.ReferencePlain(), kind.Explanation())
	fmt.Fprintf(w, "  2. New method: %s\n     %s\n", eval.Labels.Plain, kind.NewMethodNote())
}

func indexOf(s formula.Sweep, d int) int {
	if !s.Contains(d) {
		return -1
	}

	return d - s.At(0)
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
