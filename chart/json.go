package chart

import (
	"encoding/json"
	"io"
	"strconv"
)

// JSONRenderer exports figures as JSON for an external plotting front end.
type JSONRenderer struct{}

var _ Renderer = JSONRenderer{}

// Extension implements Renderer.
func (JSONRenderer) Extension() string {
	return ".json"
}

type jsonFigure struct {
	Title  string      `json:"title"`
	XAxis  jsonAxis    `json:"xaxis"`
	YAxis  jsonAxis    `json:"yaxis"`
	Traces []jsonTrace `json:"traces"`
}

type jsonAxis struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type jsonTrace struct {
	Name      string   `json:"name"`
	Mode      string   `json:"mode"`
	X         []number `json:"x"`
	Y         []number `json:"y"`
	HoverText []string `json:"hovertext,omitempty"`
}

// number encodes non-finite values as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	if !finite(float64(n)) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, float64(n), 'g', -1, 64), nil
}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, fig Figure) error {
	if len(fig.Traces) == 0 {
		return errEmpty(fig)
	}

	out := jsonFigure{
		Title:  fig.Title,
		XAxis:  jsonAxis{Title: fig.XTitle, Type: "linear"},
		YAxis:  jsonAxis{Title: fig.YTitle, Type: "linear"},
		Traces: make([]jsonTrace, len(fig.Traces)),
	}
	if fig.LogY {
		out.YAxis.Type = "log"
	}
	for i, t := range fig.Traces {
		out.Traces[i] = jsonTrace{
			Name:      t.Name,
			Mode:      "lines",
			X:         numbers(t.X),
			Y:         numbers(t.Y),
			HoverText: t.Hover,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(out)
}

func numbers(v []float64) []number {
	out := make([]number, len(v))
	for i, f := range v {
		out[i] = number(f)
	}

	return out
}
