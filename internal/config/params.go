package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arloliu/dosecurve/formula"
	"gopkg.in/yaml.v3"
)

// ExploreParams is the YAML form of one explore selection:
//
//	kind: CIR
//	terms:
//	  y: CIR
//	  bmi: ln (BMI + 1)
//	  cho: CHO
//	  tdd: 1/TDD
//	coefficients:
//	  intercept: 2
//	  tdd: 400
//	fixed:
//	  bmi: 25
//	  cho: 250
//	sweep_max: 300
type ExploreParams struct {
	Kind         string               `yaml:"kind"`
	Terms        TermLabels           `yaml:"terms"`
	Coefficients formula.Coefficients `yaml:"coefficients"`
	Fixed        formula.FixedInputs  `yaml:"fixed"`
	SweepMax     int                  `yaml:"sweep_max,omitempty"`
}

// TermLabels holds the transform label chosen for each term.
type TermLabels struct {
	Y   string `yaml:"y"`
	BMI string `yaml:"bmi"`
	CHO string `yaml:"cho"`
	TDD string `yaml:"tdd"`
}

// ReadExploreParams decodes an explore parameter file. Unknown fields are rejected.
func ReadExploreParams(path string) (*ExploreParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p ExploreParams
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &p, nil
}

// Transforms parses the term labels.
func (l TermLabels) Transforms() (formula.Transforms, error) {
	var ts formula.Transforms
	var err error

	if ts.Y, err = formula.ParseTransform(formula.TermY, l.Y); err != nil {
		return ts, err
	}
	if ts.BMI, err = formula.ParseTransform(formula.TermBMI, l.BMI); err != nil {
		return ts, err
	}
	if ts.CHO, err = formula.ParseTransform(formula.TermCHO, l.CHO); err != nil {
		return ts, err
	}
	if ts.TDD, err = formula.ParseTransform(formula.TermTDD, l.TDD); err != nil {
		return ts, err
	}

	return ts, nil
}

// Params converts the selection into evaluator parameters. defaultMax is used
// when the file does not set sweep_max.
func (p *ExploreParams) Params(defaultMax int) (formula.Params, error) {
	kind, err := formula.ParseKind(p.Kind)
	if err != nil {
		return formula.Params{}, err
	}
	ts, err := p.Terms.Transforms()
	if err != nil {
		return formula.Params{}, err
	}

	sweepMax := defaultMax
	if p.SweepMax > 0 {
		sweepMax = p.SweepMax
	}

	return formula.Params{
		Kind:         kind,
		Transforms:   ts,
		Coefficients: p.Coefficients,
		Sweep:        formula.NewSweep(kind, ts.TDD, sweepMax),
		Fixed:        p.Fixed,
	}, nil
}
