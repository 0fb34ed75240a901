// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
)

// ValidateSubmergedUnitWeight warns when a submerged soil would end up with a
// negative effective unit weight.
func ValidateSubmergedUnitWeight(unitWeight, unitWeightWater float64) string {
	if unitWeight < unitWeightWater {
		return fmt.Sprintf("Unit weight %.2f is below the unit weight of water %.2f - a submerged footing will have a negative self-weight term",
			unitWeight, unitWeightWater)
	}
	return ""
}

// ValidatePlausibleUnitWeight warns when the unit weight looks like it was
// written in the other unit system.
func ValidatePlausibleUnitWeight(system string, unitWeight float64) string {
	switch {
	case system == constants.UnitSystemSI && unitWeight > constants.MaxPlausibleUnitWeightSI:
		return fmt.Sprintf("Unit weight %.2f is unusually high for kN/m³ - was it written in pcf?", unitWeight)
	case system == constants.UnitSystemImperial && unitWeight > 0 && unitWeight < constants.MinPlausibleUnitWeightImperial:
		return fmt.Sprintf("Unit weight %.2f is unusually low for pcf - was it written in kN/m³?", unitWeight)
	}
	return ""
}

// ValidateGroundwaterDepth warns about a water table above the ground surface.
func ValidateGroundwaterDepth(groundwaterDepth float64) string {
	if groundwaterDepth < 0 {
		return fmt.Sprintf("Groundwater depth %.2f is above the ground surface", groundwaterDepth)
	}
	return ""
}

// ValidateFactorOfSafety warns about factors of safety that do not reduce
// the ultimate capacity. Zero means no allowable capacity was requested.
func ValidateFactorOfSafety(factorOfSafety float64) string {
	if factorOfSafety > 0 && factorOfSafety < 1 {
		return fmt.Sprintf("Factor of safety %.2f is below 1 - allowable capacity will exceed ultimate capacity", factorOfSafety)
	}
	return ""
}
