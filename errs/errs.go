// Package errs defines the sentinel errors shared by the dosecurve packages.
//
// Callers should match them with errors.Is; packages wrap them with context
// (file names, calculation kinds, offending values) using fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidKind is returned when a calculation kind is not BASAL, CIR or ISF.
	ErrInvalidKind = errors.New("invalid calculation kind")
	// ErrInvalidTransform is returned when a transform is unknown or not allowed for a term.
	ErrInvalidTransform = errors.New("invalid term transform")
	// ErrEmptySweep is returned when a sweep domain has no points.
	ErrEmptySweep = errors.New("empty sweep domain")
	// ErrSweepDomain is returned when a sweep contains a point outside the domain
	// of the selected dose transform or reference formula (e.g. zero under 1/TDD).
	ErrSweepDomain = errors.New("sweep outside transform domain")
	// ErrInvalidInput is returned when a fixed BMI or CHO value cannot be transformed.
	ErrInvalidInput = errors.New("invalid fixed input")

	// ErrNoReference is returned when a results table carries no reference row.
	ErrNoReference = errors.New("no reference row found")
	// ErrRankOutOfRange is returned when a requested candidate rank does not exist.
	ErrRankOutOfRange = errors.New("candidate rank out of range")
	// ErrCandidateNotFound is returned when no candidate matches a requested ID.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrAmbiguousID is returned when two different equations share a candidate ID.
	ErrAmbiguousID = errors.New("ambiguous candidate id")
	// ErrEmptyEquation is returned when a candidate row has no equation label.
	ErrEmptyEquation = errors.New("empty equation label")

	// ErrResultsNotFound is returned when the results file for a kind does not exist.
	ErrResultsNotFound = errors.New("results file not found")
	// ErrMalformedResults is returned when a results file cannot be parsed at all.
	ErrMalformedResults = errors.New("malformed results file")

	// ErrLengthMismatch is returned when two curves do not share a sweep.
	ErrLengthMismatch = errors.New("curve length mismatch")
	// ErrUnknownRenderer is returned for an unsupported chart renderer name.
	ErrUnknownRenderer = errors.New("unknown chart renderer")
	// ErrEmptyFigure is returned when a figure has no traces to draw.
	ErrEmptyFigure = errors.New("figure has no traces")
	// ErrUnsupportedCompression is returned for an unknown compression codec.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
