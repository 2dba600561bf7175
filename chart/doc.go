// Package chart turns dose curves into figures and renders them.
//
// A Figure is a plain description (titles, log or linear y-axis, named traces
// with per-point hover text) built by ExploreFigure or ResultsFigure. It is
// drawn by one of three renderers selected by name:
//
//	plot     gonum/plot, PNG or SVG, native log scale
//	gochart  go-chart, PNG, log scale drawn in log10 space
//	json     JSON document for an interactive front end
//
// Points that cannot be drawn (NaN, ±Inf, or y ≤ 0 on a log axis) are left
// out of image output and exported as null in JSON.
package chart
