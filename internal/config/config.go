// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/validation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for terzaghi-bearing.
type Configuration struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
	Units      UnitsConfig      `mapstructure:"units"`
	Foundation FoundationConfig `mapstructure:"foundation"`
	Report     ReportConfig     `mapstructure:"report"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv, json, yaml
}

// UnitsConfig selects the unit system the foundation values are written in.
type UnitsConfig struct {
	System          string  `mapstructure:"system"`          // imperial, si
	UnitWeightWater float64 `mapstructure:"unitWeightWater"` // 0 selects the system default
}

// FoundationConfig describes the footing to analyse.
type FoundationConfig struct {
	Name             string   `mapstructure:"name"`
	Cohesion         float64  `mapstructure:"cohesion"`
	FrictionAngle    int      `mapstructure:"frictionAngle"`
	Depth            float64  `mapstructure:"depth"`
	UnitWeight       float64  `mapstructure:"unitWeight"`
	Width            float64  `mapstructure:"width"`
	Shape            string   `mapstructure:"shape"`
	GroundwaterDepth *float64 `mapstructure:"groundwaterDepth"`
	FactorOfSafety   float64  `mapstructure:"factorOfSafety"`
}

// ReportConfig holds optional report destinations.
type ReportConfig struct {
	PDF  string `mapstructure:"pdf"`
	XLSX string `mapstructure:"xlsx"`
}

// FlagKeys maps CLI flag names to configuration keys. Only flags the user
// actually set override the file.
var FlagKeys = map[string]string{
	"output-format":     "output.format",
	"log-level":         "logging.level",
	"unit-system":       "units.system",
	"unit-weight-water": "units.unitWeightWater",
	"name":              "foundation.name",
	"cohesion":          "foundation.cohesion",
	"friction-angle":    "foundation.frictionAngle",
	"depth":             "foundation.depth",
	"unit-weight":       "foundation.unitWeight",
	"width":             "foundation.width",
	"shape":             "foundation.shape",
	"groundwater-depth": "foundation.groundwaterDepth",
	"factor-of-safety":  "foundation.factorOfSafety",
	"pdf":               "report.pdf",
	"xlsx":              "report.xlsx",
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with TERZAGHI and any
// changed flags in flags override file values. flags may be nil.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	return load(configPath, flags, false)
}

// LoadOptionalConfiguration behaves like LoadConfiguration but treats a
// missing file as an empty one, so environment and flag overrides still apply.
func LoadOptionalConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	return load(configPath, flags, true)
}

func load(configPath string, flags *pflag.FlagSet, optional bool) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range FlagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("unable to bind environment for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			key, ok := FlagKeys[f.Name]
			if !ok || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("unable to bind flags: %w", bindErr)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &configuration, nil
}

// UnitSystem returns the configured unit system, defaulting to imperial.
func (c *Configuration) UnitSystem() string {
	if c.Units.System == "" {
		return constants.DefaultUnitSystem
	}
	return strings.ToLower(c.Units.System)
}

// UnitWeightWater resolves the unit weight of water: an explicit value wins,
// otherwise the unit system decides.
func (c *Configuration) UnitWeightWater() (float64, error) {
	if c.Units.UnitWeightWater < 0 {
		return 0, fmt.Errorf("unit weight of water must not be negative, got %v", c.Units.UnitWeightWater)
	}
	if c.Units.UnitWeightWater > 0 {
		return c.Units.UnitWeightWater, nil
	}

	system := c.UnitSystem()
	if err := validation.ValidateUnitSystem(system); err != nil {
		return 0, err
	}
	if system == constants.UnitSystemSI {
		return constants.UnitWeightWaterSI, nil
	}
	return constants.UnitWeightWaterImperial, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Problems that make computation impossible are reported
// as errors by ToInput and UnitWeightWater instead.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	f := c.Foundation

	if warning := validation.ValidatePlausibleUnitWeight(c.UnitSystem(), f.UnitWeight); warning != "" {
		warnings = append(warnings, warning)
	}

	if gammaW, err := c.UnitWeightWater(); err == nil {
		if warning := validation.ValidateSubmergedUnitWeight(f.UnitWeight, gammaW); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if f.GroundwaterDepth != nil {
		if warning := validation.ValidateGroundwaterDepth(*f.GroundwaterDepth); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if warning := validation.ValidateFactorOfSafety(f.FactorOfSafety); warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings
}
