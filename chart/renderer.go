package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/internal/options"
	"github.com/arloliu/dosecurve/internal/pool"
)

// Renderer names accepted by NewRenderer.
const (
	RendererPlot    = "plot"
	RendererGoChart = "gochart"
	RendererJSON    = "json"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

// Renderer draws a Figure to an output stream.
type Renderer interface {
	// Render writes the encoded figure to w.
	Render(w io.Writer, fig Figure) error
	// Extension returns the file extension of the output, including the dot.
	Extension() string
}

type config struct {
	width  int
	height int
	format string
}

// Option configures a renderer.
type Option = options.Option[*config]

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return options.New(func(c *config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid chart size %dx%d", width, height)
		}
		c.width, c.height = width, height

		return nil
	})
}

// WithFormat selects the image format of the plot renderer: "png" or "svg".
func WithFormat(format string) Option {
	return options.New(func(c *config) error {
		switch f := strings.ToLower(format); f {
		case "png", "svg":
			c.format = f
			return nil
		default:
			return fmt.Errorf("unsupported image format %q", format)
		}
	})
}

// NewRenderer creates the renderer registered under name.
func NewRenderer(name string, opts ...Option) (Renderer, error) {
	cfg := &config{width: DefaultWidth, height: DefaultHeight, format: "png"}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch strings.ToLower(name) {
	case RendererPlot:
		return &PlotRenderer{width: cfg.width, height: cfg.height, format: cfg.format}, nil
	case RendererGoChart:
		return &GoChartRenderer{width: cfg.width, height: cfg.height}, nil
	case RendererJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownRenderer, name)
	}
}

// WriteFile renders fig to path. An empty extension is completed with the
// renderer's extension; the written path is returned. Nothing is written when
// rendering fails.
func WriteFile(path string, fig Figure, r Renderer) (string, error) {
	if filepath.Ext(path) == "" {
		path += r.Extension()
	}

	buf := pool.GetFigureBuffer()
	defer pool.PutFigureBuffer(buf)

	if err := r.Render(buf, fig); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// drawable reports whether at least one trace has a point to draw.
func (fig Figure) drawable() bool {
	for _, t := range fig.Traces {
		if xs, _ := t.points(fig.LogY); len(xs) > 0 {
			return true
		}
	}

	return false
}

func errEmpty(fig Figure) error {
	return fmt.Errorf("%w: %q", errs.ErrEmptyFigure, fig.Title)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
