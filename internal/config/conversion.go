// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
)

// ToInput converts the configured foundation into a terzaghi.FoundationInput.
// The shape name is parsed here so that an unknown shape is reported before
// any computation starts.
func (f *FoundationConfig) ToInput() (terzaghi.FoundationInput, error) {
	shape, err := terzaghi.ParseShape(f.Shape)
	if err != nil {
		return terzaghi.FoundationInput{}, err
	}

	input := terzaghi.FoundationInput{
		Cohesion:      f.Cohesion,
		FrictionAngle: f.FrictionAngle,
		Depth:         f.Depth,
		UnitWeight:    f.UnitWeight,
		Width:         f.Width,
		Shape:         shape,
	}
	if f.GroundwaterDepth != nil {
		input.GroundwaterDepth = terzaghi.WaterTable(*f.GroundwaterDepth)
	}

	return input, nil
}

// Options returns the computation options implied by the unit settings.
func (c *Configuration) Options() ([]terzaghi.Option, error) {
	gammaW, err := c.UnitWeightWater()
	if err != nil {
		return nil, err
	}
	return []terzaghi.Option{terzaghi.WithUnitWeightWater(gammaW)}, nil
}
