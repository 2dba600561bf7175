package chart

import (
	"strconv"
	"strings"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/formula"
)

// XTitle is the x-axis title of every dose-curve figure.
const XTitle = "Total Daily Dose (TDD)"

// Trace is one named line of a figure.
type Trace struct {
	Name string
	X    []float64
	Y    []float64
	// Hover holds the per-point hover text, aligned with X.
	Hover []string
}

// Figure is the renderer-independent description of a dose-curve chart.
type Figure struct {
	Title  string
	XTitle string
	YTitle string
	// LogY plots the y-axis on a logarithmic scale.
	LogY   bool
	Traces []Trace
}

// Title returns the figure title of a kind, e.g. "CIR vs Total Daily Dose".
func Title(kind formula.Kind) string {
	return kind.String() + " vs Total Daily Dose"
}

// ExploreFigure plots the AACE reference against a user-built alternative.
//
// Basal figures show the hourly basal rate (BR) in the hover text.
func ExploreFigure(eval *formula.Evaluation) Figure {
	kind := eval.Params.Kind

	return Figure{
		Title:  Title(kind),
		XTitle: XTitle,
		YTitle: kind.AxisTitle(),
		LogY:   kind.LogAxis(),
		Traces: []Trace{
			newTrace("AACE: "+eval.Labels.ReferencePlain, "AACE", kind, eval.Reference),
			newTrace("New: "+eval.Labels.Plain, "NEW", kind, eval.Curve),
		},
	}
}

// ResultsFigure plots the AACE reference against a selected precomputed model.
func ResultsFigure(kind formula.Kind, ref, sel formula.Curve, selected candidate.RankedRow) Figure {
	return Figure{
		Title:  Title(kind),
		XTitle: XTitle,
		YTitle: kind.String(),
		LogY:   kind.LogAxis(),
		Traces: []Trace{
			newTrace("AACE: "+kind.ReferencePlain(), "AACE", kind, ref),
			newTrace("Selected: "+selected.Equation, "Selected", kind, sel),
		},
	}
}

func newTrace(name, model string, kind formula.Kind, c formula.Curve) Trace {
	hover := make([]string, len(c.Y))
	for i := range c.Y {
		hover[i] = HoverText(model, kind, c, i)
	}

	return Trace{Name: name, X: c.X, Y: c.Y, Hover: hover}
}

// HoverText returns the hover label of point i, e.g.
// "AACE<br>TDD: 24<br>BASAL: 12.00<br>BR: 0.50".
func HoverText(model string, kind formula.Kind, c formula.Curve, i int) string {
	var b strings.Builder
	b.WriteString(model)
	b.WriteString("<br>TDD: ")
	b.WriteString(strconv.FormatFloat(c.X[i], 'f', -1, 64))
	b.WriteString("<br>")
	b.WriteString(kind.String())
	b.WriteString(": ")
	b.WriteString(strconv.FormatFloat(c.Y[i], 'f', 2, 64))
	if i < len(c.Hourly) {
		b.WriteString("<br>BR: ")
		b.WriteString(strconv.FormatFloat(c.Hourly[i], 'f', 2, 64))
	}

	return b.String()
}

// points returns the drawable points of a trace. Non-finite values are
// dropped, as are non-positive values on a logarithmic axis.
func (t Trace) points(logY bool) (xs, ys []float64) {
	n := min(len(t.X), len(t.Y))
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := t.X[i], t.Y[i]
		if !finite(x) || !finite(y) || (logY && y <= 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys
}
