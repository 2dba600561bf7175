package main

import (
	"io"
	"text/tabwriter"

	"github.com/arloliu/dosecurve/chart"
	"go.uber.org/zap"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeFigure renders fig with the configured renderer.
func (a *app) writeFigure(path string, fig chart.Figure) error {
	r, err := chart.NewRenderer(a.cfg.Chart.Renderer, a.cfg.RendererOptions()...)
	if err != nil {
		return err
	}

	written, err := chart.WriteFile(path, fig, r)
	if err != nil {
		return err
	}
	a.logger.Info("wrote figure",
		zap.String("path", written),
		zap.String("renderer", a.cfg.Chart.Renderer),
		zap.Int("traces", len(fig.Traces)),
	)

	return nil
}
