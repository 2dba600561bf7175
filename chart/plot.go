package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// pixelsPerInch is the resolution gonum/plot uses for raster output.
const pixelsPerInch = 96

// PlotRenderer draws figures with gonum/plot as PNG or SVG.
type PlotRenderer struct {
	width  int
	height int
	format string
}

var _ Renderer = (*PlotRenderer)(nil)

// Extension implements Renderer.
func (r *PlotRenderer) Extension() string {
	return "." + r.format
}

// Render implements Renderer.
func (r *PlotRenderer) Render(w io.Writer, fig Figure) error {
	if !fig.drawable() {
		return errEmpty(fig)
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XTitle
	p.Y.Label.Text = fig.YTitle
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	if fig.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for i, t := range fig.Traces {
		xs, ys := t.points(fig.LogY)
		if len(xs) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j] = plotter.XY{X: xs[j], Y: ys[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("trace %q: %w", t.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(t.Name, line)
	}

	wt, err := p.WriterTo(pixels(r.width), pixels(r.height), r.format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pixelsPerInch
}
