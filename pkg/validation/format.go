// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, constants.OutputFormatYAML:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, constants.OutputFormatYAML, format)
}

// ValidateUnitSystem checks if the unit system is one of the supported systems.
func ValidateUnitSystem(system string) error {
	if system != constants.UnitSystemImperial && system != constants.UnitSystemSI {
		return fmt.Errorf("expected unit system of %s or %s, got %s",
			constants.UnitSystemImperial, constants.UnitSystemSI, system)
	}
	return nil
}
