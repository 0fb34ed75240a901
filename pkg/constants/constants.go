// Package constants provides shared constants for the terzaghi-bearing application.
package constants

// Unit weight of water for the supported unit systems.
const (
	// UnitWeightWaterImperial is the unit weight of water in pcf.
	UnitWeightWaterImperial = 62.4

	// UnitWeightWaterSI is the unit weight of water in kN/m³.
	UnitWeightWaterSI = 9.81

	// DefaultUnitWeightWater keeps results identical to the hand calculations
	// this tool replaces, which are all in imperial units.
	DefaultUnitWeightWater = UnitWeightWaterImperial
)

// Unit system constants
const (
	// UnitSystemImperial uses psf, pcf and ft.
	UnitSystemImperial = "imperial"

	// UnitSystemSI uses kPa, kN/m³ and m.
	UnitSystemSI = "si"

	// DefaultUnitSystem is used when the configuration does not name one.
	DefaultUnitSystem = UnitSystemImperial
)

// Groundwater constants
const (
	// GroundwaterDefaultMultiplier places an unspecified water table at
	// this multiple of (depth + width), outside the influence zone.
	GroundwaterDefaultMultiplier = 2.0
)

// Friction angle limits of the bearing capacity factor table.
const (
	// MinFrictionAngle is the smallest tabulated friction angle in degrees.
	MinFrictionAngle = 0

	// MaxFrictionAngle is the largest tabulated friction angle in degrees.
	MaxFrictionAngle = 41
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TERZAGHI"
)

// Validation constants
const (
	// Tolerance is the tolerance used when comparing computed stresses.
	Tolerance = 1e-9

	// DisplayPrecision is the number of decimals used in rendered output.
	DisplayPrecision = 3

	// MaxPlausibleUnitWeightSI flags SI configurations that were probably
	// written in pcf.
	MaxPlausibleUnitWeightSI = 30.0

	// MinPlausibleUnitWeightImperial flags imperial configurations that were
	// probably written in kN/m³.
	MinPlausibleUnitWeightImperial = 30.0
)
