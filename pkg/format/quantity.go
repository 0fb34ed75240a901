// Package format renders engineering quantities for people.
package format

import (
	"strconv"

	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Units holds the labels for one unit system.
type Units struct {
	Stress     string
	UnitWeight string
	Length     string
}

// UnitsFor returns the labels for system, falling back to imperial.
func UnitsFor(system string) Units {
	if system == constants.UnitSystemSI {
		return Units{Stress: "kPa", UnitWeight: "kN/m³", Length: "m"}
	}
	return Units{Stress: "psf", UnitWeight: "pcf", Length: "ft"}
}

var printer = message.NewPrinter(language.English)

// Number returns value with thousands separators and the display precision,
// e.g. "8,177.304".
func Number(value float64) string {
	return printer.Sprintf("%.*f", constants.DisplayPrecision, mathutil.Round(value))
}

// Quantity returns a number followed by its unit, e.g. "8,177.304 psf".
func Quantity(value float64, unit string) string {
	return Number(value) + " " + unit
}

// Plain returns the shortest representation of value after rounding to the
// display precision, e.g. "37.6". It is used for formula breakdowns.
func Plain(value float64) string {
	rounded := mathutil.Round(value)
	if mathutil.IsZero(rounded) {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
