// Package terzaghi computes the ultimate bearing capacity of shallow
// foundations with the Terzaghi method.
//
// The unit system is whatever the caller uses for cohesion, unit weight and
// lengths; only the unit weight of water has to agree with it. It defaults
// to 62.4 (pcf) and is set with WithUnitWeightWater for other systems.
//
// Compute is a pure function over its input and the read-only factor table
// and may be called concurrently.
package terzaghi

import (
	"math"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
)

// FoundationInput describes one footing and the soil beneath it.
type FoundationInput struct {
	Cohesion      float64 `json:"cohesion" yaml:"cohesion"`
	FrictionAngle int     `json:"frictionAngle" yaml:"frictionAngle"` // whole degrees, 0-41
	Depth         float64 `json:"depth" yaml:"depth"`
	UnitWeight    float64 `json:"unitWeight" yaml:"unitWeight"` // total unit weight of soil
	Width         float64 `json:"width" yaml:"width"`
	Shape         Shape   `json:"shape" yaml:"shape"`

	// GroundwaterDepth is nil when groundwater should have no effect.
	GroundwaterDepth *float64 `json:"groundwaterDepth,omitempty" yaml:"groundwaterDepth,omitempty"`
}

// WaterTable returns a pointer suitable for FoundationInput.GroundwaterDepth.
func WaterTable(depth float64) *float64 {
	return &depth
}

// Terms are the three addends of the bearing capacity equation.
type Terms struct {
	Cohesion   float64 `json:"cohesion" yaml:"cohesion"`
	Surcharge  float64 `json:"surcharge" yaml:"surcharge"`
	SelfWeight float64 `json:"selfWeight" yaml:"selfWeight"`
}

// Result holds the ultimate bearing capacity and every intermediate value
// that went into it.
type Result struct {
	Input                FoundationInput `json:"input" yaml:"input"`
	BearingCapacity      float64         `json:"bearingCapacity" yaml:"bearingCapacity"`
	Factors              Factors         `json:"factors" yaml:"factors"`
	Coefficients         Coefficients    `json:"coefficients" yaml:"coefficients"`
	EffectiveUnitWeight  float64         `json:"effectiveUnitWeight" yaml:"effectiveUnitWeight"`
	EffectiveStress      float64         `json:"effectiveStress" yaml:"effectiveStress"`
	GroundwaterDepth     float64         `json:"groundwaterDepth" yaml:"groundwaterDepth"`
	GroundwaterDefaulted bool            `json:"groundwaterDefaulted" yaml:"groundwaterDefaulted"`
	Zone                 Zone            `json:"zone" yaml:"zone"`
	UnitWeightWater      float64         `json:"unitWeightWater" yaml:"unitWeightWater"`
}

// Terms splits the bearing capacity into its cohesion, surcharge and
// self-weight contributions.
func (r Result) Terms() Terms {
	return Terms{
		Cohesion:   r.Coefficients.C1 * r.Input.Cohesion * r.Factors.Nc,
		Surcharge:  r.Coefficients.C2 * r.EffectiveStress * r.Factors.Nq,
		SelfWeight: r.Coefficients.C3 * r.EffectiveUnitWeight * r.Input.Width * r.Factors.Ngamma,
	}
}

type options struct {
	unitWeightWater float64
}

// Option configures Compute.
type Option func(*options)

// WithUnitWeightWater sets the unit weight of water. It must be expressed in
// the same units as FoundationInput.UnitWeight.
func WithUnitWeightWater(gammaW float64) Option {
	return func(o *options) {
		o.unitWeightWater = gammaW
	}
}

// Compute returns the ultimate bearing capacity
//
//	q = c1·c·Nc + c2·σ'·Nq + c3·γ'·B·Nγ
//
// for the given footing.
func Compute(input FoundationInput, opts ...Option) (Result, error) {
	o := options{unitWeightWater: constants.DefaultUnitWeightWater}
	for _, opt := range opts {
		opt(&o)
	}

	if !(input.Width > 0) || math.IsInf(input.Width, 1) {
		return Result{}, &InputError{Field: "width", Value: input.Width, Kind: KindInvalidArgument, Err: ErrNonPositiveWidth}
	}

	factors, err := LookupFactors(input.FrictionAngle)
	if err != nil {
		return Result{}, err
	}

	coefficients, err := ShapeCoefficients(input.Shape)
	if err != nil {
		return Result{}, err
	}

	gw, defaulted := DefaultGroundwaterDepth(input.Depth, input.Width), true
	if input.GroundwaterDepth != nil {
		gw, defaulted = *input.GroundwaterDepth, false
	}

	result := Result{
		Input:                input,
		Factors:              factors,
		Coefficients:         coefficients,
		EffectiveUnitWeight:  EffectiveUnitWeight(gw, input.Depth, input.Width, input.UnitWeight, o.unitWeightWater),
		EffectiveStress:      EffectiveStress(gw, input.Depth, input.UnitWeight, o.unitWeightWater),
		GroundwaterDepth:     gw,
		GroundwaterDefaulted: defaulted,
		Zone:                 GroundwaterZone(gw, input.Depth, input.Width),
		UnitWeightWater:      o.unitWeightWater,
	}
	terms := result.Terms()
	result.BearingCapacity = terms.Cohesion + terms.Surcharge + terms.SelfWeight

	return result, nil
}

// Allowable divides an ultimate bearing capacity by a factor of safety.
func Allowable(ultimate, factorOfSafety float64) (float64, error) {
	if !(factorOfSafety > 0) {
		return 0, &InputError{Field: "factorOfSafety", Value: factorOfSafety, Kind: KindInvalidArgument, Err: ErrNonPositiveFactorOfSafety}
	}
	return ultimate / factorOfSafety, nil
}
