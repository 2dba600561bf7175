package chart

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/dosecurve/errs"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func logFigure() Figure {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ref := make([]float64, len(x))
	alt := make([]float64, len(x))
	for i, d := range x {
		ref[i] = 450 / d
		alt[i] = d - 4 // non-positive for d <= 4
	}

	return Figure{
		Title:  "CIR vs Total Daily Dose",
		XTitle: XTitle,
		YTitle: "CIR",
		LogY:   true,
		Traces: []Trace{
			{Name: "AACE: CIR = 450 / TDD", X: x, Y: ref},
			{Name: "Selected: CIR = TDD - 4", X: x, Y: alt},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for name, ext := range map[string]string{
		RendererPlot:    ".png",
		RendererGoChart: ".png",
		RendererJSON:    ".json",
	} {
		r, err := NewRenderer(name)
		require.NoError(t, err, name)
		require.Equal(t, ext, r.Extension(), name)
	}

	r, err := NewRenderer("PLOT", WithFormat("svg"), WithSize(800, 600))
	require.NoError(t, err)
	require.Equal(t, ".svg", r.Extension())

	_, err = NewRenderer("plotly")
	require.ErrorIs(t, err, errs.ErrUnknownRenderer)

	_, err = NewRenderer(RendererPlot, WithSize(0, 10))
	require.Error(t, err)
	_, err = NewRenderer(RendererPlot, WithFormat("gif"))
	require.Error(t, err)
}

func TestRenderers_PNG(t *testing.T) {
	for _, name := range []string{RendererPlot, RendererGoChart} {
		t.Run(name, func(t *testing.T) {
			r, err := NewRenderer(name, WithSize(640, 400))
			require.NoError(t, err)

			for _, logY := range []bool{false, true} {
				fig := logFigure()
				fig.LogY = logY

				var buf bytes.Buffer
				require.NoError(t, r.Render(&buf, fig))
				require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "logY=%t", logY)
			}
		})
	}
}

func TestPlotRenderer_SVG(t *testing.T) {
	r, err := NewRenderer(RendererPlot, WithFormat("svg"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, logFigure()))
	require.Contains(t, buf.String(), "<svg")
}

func TestRenderers_EmptyFigure(t *testing.T) {
	empty := Figure{Title: "empty", LogY: true, Traces: []Trace{{X: []float64{1}, Y: []float64{-1}}}}

	for _, name := range []string{RendererPlot, RendererGoChart} {
		r, err := NewRenderer(name)
		require.NoError(t, err)
		require.ErrorIs(t, r.Render(&bytes.Buffer{}, empty), errs.ErrEmptyFigure, name)
	}

	r, err := NewRenderer(RendererJSON)
	require.NoError(t, err)
	require.ErrorIs(t, r.Render(&bytes.Buffer{}, Figure{}), errs.ErrEmptyFigure)
}

func TestJSONRenderer(t *testing.T) {
	fig := logFigure()
	fig.Traces[1].Y[0] = math.NaN()
	fig.Traces[0].Hover = []string{"AACE<br>TDD: 1<br>CIR: 450.00"}

	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, fig))
	require.Contains(t, buf.String(), "AACE<br>TDD: 1")

	var decoded struct {
		Title string `json:"title"`
		YAxis struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"yaxis"`
		Traces []struct {
			Name string     `json:"name"`
			Mode string     `json:"mode"`
			Y    []*float64 `json:"y"`
		} `json:"traces"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "CIR vs Total Daily Dose", decoded.Title)
	require.Equal(t, "log", decoded.YAxis.Type)
	require.Len(t, decoded.Traces, 2)
	require.Equal(t, "lines", decoded.Traces[0].Mode)
	require.Equal(t, 450.0, *decoded.Traces[0].Y[0])
	require.Nil(t, decoded.Traces[1].Y[0])
	require.Equal(t, -2.0, *decoded.Traces[1].Y[1])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(RendererJSON)
	require.NoError(t, err)

	path, err := WriteFile(filepath.Join(dir, "cir"), logFigure(), r)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cir.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	path, err = WriteFile(filepath.Join(dir, "figure.out"), logFigure(), r)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "figure.out"), path)

	_, err = WriteFile(filepath.Join(dir, "missing", "cir.json"), logFigure(), r)
	require.Error(t, err)

	_, err = WriteFile(filepath.Join(dir, "empty.json"), Figure{Title: "empty"}, r)
	require.ErrorIs(t, err, errs.ErrEmptyFigure)
	require.NoFileExists(t, filepath.Join(dir, "empty.json"))
}
