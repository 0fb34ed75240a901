// Package analysis defines the data structures related to a bearing capacity
// analysis and includes the function that runs one from a configuration.
package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/terzaghi-bearing/internal/config"
	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/mathutil"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"go.uber.org/zap"
)

// Analysis holds all information related to one bearing capacity analysis.
type Analysis struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	UnitSystem string          `json:"unitSystem" yaml:"unitSystem"`
	Result     terzaghi.Result `json:"result" yaml:"result"`

	// FactorOfSafety is zero when no allowable capacity was requested.
	FactorOfSafety           float64 `json:"factorOfSafety,omitempty" yaml:"factorOfSafety,omitempty"`
	AllowableBearingCapacity float64 `json:"allowableBearingCapacity,omitempty" yaml:"allowableBearingCapacity,omitempty"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HasAllowable reports whether an allowable bearing capacity was computed.
func (a *Analysis) HasAllowable() bool {
	return a.FactorOfSafety > 0
}

// GetBearingCapacity runs the analysis described by conf.
func GetBearingCapacity(logger *zap.Logger, conf config.Configuration) (*Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	input, err := conf.Foundation.ToInput()
	if err != nil {
		return nil, fmt.Errorf("invalid foundation %q: %w", conf.Foundation.Name, err)
	}

	opts, err := conf.Options()
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		ID:             uuid.New().String(),
		Name:           conf.Foundation.Name,
		UnitSystem:     conf.UnitSystem(),
		FactorOfSafety: conf.Foundation.FactorOfSafety,
		Warnings:       conf.ValidateConfiguration(),
	}
	logger = logger.With(zap.String("analysis", a.ID))

	if input.GroundwaterDepth == nil {
		logger.Debug("no groundwater depth given, placing water table outside the influence zone",
			zap.String("op", "analysis.GetBearingCapacity"),
		)
	}

	a.Result, err = terzaghi.Compute(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute bearing capacity for %q: %w", a.Name, err)
	}

	logger.Debug(fmt.Sprintf("water table %s", a.Result.Zone),
		zap.String("op", "analysis.GetBearingCapacity"),
		zap.Float64("groundwaterDepth", a.Result.GroundwaterDepth),
		zap.Float64("effectiveUnitWeight", a.Result.EffectiveUnitWeight),
		zap.Float64("effectiveStress", a.Result.EffectiveStress),
	)

	if mathutil.WithinTolerance(a.Result.GroundwaterDepth, input.Depth, constants.Tolerance) {
		logger.Debug("water table at footing base, surcharge uses total stress",
			zap.String("op", "analysis.GetBearingCapacity"),
		)
	}

	if conf.Foundation.FactorOfSafety != 0 {
		a.AllowableBearingCapacity, err = terzaghi.Allowable(a.Result.BearingCapacity, conf.Foundation.FactorOfSafety)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("computed ultimate bearing capacity",
		zap.String("op", "analysis.GetBearingCapacity"),
		zap.String("name", a.Name),
		zap.Float64("bearingCapacity", a.Result.BearingCapacity),
		zap.Float64("nc", a.Result.Factors.Nc),
		zap.Float64("nq", a.Result.Factors.Nq),
		zap.Float64("ngamma", a.Result.Factors.Ngamma),
	)

	return a, nil
}
