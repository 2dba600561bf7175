package chart

import (
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gochartPalette = []drawing.Color{
	gochart.ColorBlue,
	gochart.ColorRed,
	gochart.ColorGreen,
	{R: 255, G: 165, B: 0, A: 255},
}

// GoChartRenderer draws figures with go-chart as PNG.
//
// go-chart has no logarithmic axis; log figures are drawn in log10 space with
// ticks labelled by their linear values.
type GoChartRenderer struct {
	width  int
	height int
}

var _ Renderer = (*GoChartRenderer)(nil)

// Extension implements Renderer.
func (r *GoChartRenderer) Extension() string {
	return ".png"
}

// Render implements Renderer.
func (r *GoChartRenderer) Render(w io.Writer, fig Figure) error {
	if !fig.drawable() {
		return errEmpty(fig)
	}

	var series []gochart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, t := range fig.Traces {
		xs, ys := t.points(fig.LogY)
		if len(xs) == 0 {
			continue
		}
		if fig.LogY {
			for j, y := range ys {
				ys[j] = math.Log10(y)
			}
		}
		for _, y := range ys {
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}

		series = append(series, gochart.ContinuousSeries{
			Name:    t.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: gochartPalette[i%len(gochartPalette)],
				StrokeWidth: 2,
			},
		})
	}

	yAxis := gochart.YAxis{Name: fig.YTitle}
	if fig.LogY {
		yAxis.Range, yAxis.Ticks = decadeTicks(lo, hi)
	}

	ch := gochart.Chart{
		Title:      fig.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      gochart.XAxis{Name: fig.XTitle},
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch.Render(gochart.PNG, w)
}

// decadeTicks returns a log10-space range covering [lo, hi] and one tick per
// power of ten, labelled with the linear value.
func decadeTicks(lo, hi float64) (*gochart.ContinuousRange, []gochart.Tick) {
	first, last := math.Floor(lo), math.Ceil(hi)
	if last <= first {
		last = first + 1
	}

	ticks := make([]gochart.Tick, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, gochart.Tick{
			Value: k,
			Label: strconv.FormatFloat(math.Pow(10, k), 'g', -1, 64),
		})
	}

	return &gochart.ContinuousRange{Min: first, Max: last}, ticks
}
