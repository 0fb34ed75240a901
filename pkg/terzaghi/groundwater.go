package terzaghi

import (
	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
)

// Zone describes where the water table sits relative to the footing.
type Zone int

const (
	// ZoneAboveBase means the water table is at or above the footing base.
	ZoneAboveBase Zone = iota
	// ZoneInfluence means the water table lies within one footing width below the base.
	ZoneInfluence
	// ZoneBelowInfluence means the water table has no effect on the soil weight term.
	ZoneBelowInfluence
)

func (z Zone) String() string {
	switch z {
	case ZoneAboveBase:
		return "at or above footing base"
	case ZoneInfluence:
		return "within influence zone"
	default:
		return "below influence zone"
	}
}

// MarshalText renders the zone by name in JSON and YAML output.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// DefaultGroundwaterDepth is the water table depth assumed when none is
// given. It always lies below depth+width.
func DefaultGroundwaterDepth(depth, width float64) float64 {
	return constants.GroundwaterDefaultMultiplier * (depth + width)
}

// GroundwaterZone classifies the water table depth gw for a footing at
// depth with the given width.
func GroundwaterZone(gw, depth, width float64) Zone {
	switch {
	case gw <= depth:
		return ZoneAboveBase
	case gw < depth+width:
		return ZoneInfluence
	default:
		return ZoneBelowInfluence
	}
}

// EffectiveUnitWeight returns the unit weight used in the self-weight term.
// Inside the influence zone the buoyant reduction is interpolated linearly
// from the full reduction at the base to none at one width below it.
// width must be positive.
func EffectiveUnitWeight(gw, depth, width, unitWeight, unitWeightWater float64) float64 {
	switch GroundwaterZone(gw, depth, width) {
	case ZoneAboveBase:
		return unitWeight - unitWeightWater
	case ZoneInfluence:
		return unitWeight - unitWeightWater*(1-(gw-depth)/width)
	default:
		return unitWeight
	}
}

// EffectiveStress returns the overburden stress at footing depth. Pore
// pressure is only subtracted when the water table is strictly above the
// base; a water table exactly at the base yields the total stress.
func EffectiveStress(gw, depth, unitWeight, unitWeightWater float64) float64 {
	totalStress := unitWeight * depth
	if gw >= depth {
		return totalStress
	}
	porePressure := (depth - gw) * unitWeightWater
	return totalStress - porePressure
}
