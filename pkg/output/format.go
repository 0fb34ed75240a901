// Package output provides utilities for formatting and displaying bearing
// capacity results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
	"github.com/iwvelando/terzaghi-bearing/pkg/format"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"gopkg.in/yaml.v3"
)

var heading = color.New(color.Bold, color.FgCyan)

// Write renders a in the named output format.
func Write(w io.Writer, outputFormat string, a *analysis.Analysis) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, a)
	case constants.OutputFormatCSV:
		return CsvFormat(w, a)
	case constants.OutputFormatJSON:
		return JSONFormat(w, a)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, a)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// Breakdown returns the factor line and the expanded equation for a result,
// e.g. "(1.3 * 0 * 37.2) + (1 * 350 * 22.5) + (0.4 * 37.6 * 1 * 20.1) = 8177.304".
func Breakdown(r terzaghi.Result) (factors string, equation string) {
	p := format.Plain
	factors = fmt.Sprintf("Nc=%s Nq=%s Ng=%s", p(r.Factors.Nc), p(r.Factors.Nq), p(r.Factors.Ngamma))
	equation = fmt.Sprintf("(%s * %s * %s) + (%s * %s * %s) + (%s * %s * %s * %s) = %s",
		p(r.Coefficients.C1), p(r.Input.Cohesion), p(r.Factors.Nc),
		p(r.Coefficients.C2), p(r.EffectiveStress), p(r.Factors.Nq),
		p(r.Coefficients.C3), p(r.EffectiveUnitWeight), p(r.Input.Width), p(r.Factors.Ngamma),
		p(r.BearingCapacity))
	return factors, equation
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, a *analysis.Analysis) error {
	u := format.UnitsFor(a.UnitSystem)
	r := a.Result
	in := r.Input

	name := a.Name
	if name == "" {
		name = "unnamed footing"
	}

	groundwater := format.Quantity(r.GroundwaterDepth, u.Length)
	if r.GroundwaterDefaulted {
		groundwater += " (not given, outside influence zone)"
	}

	if _, err := heading.Fprintf(w, "--- Terzaghi bearing capacity for %s ---\n", name); err != nil {
		return err
	}
	rows := [][2]string{
		{"Shape", string(in.Shape)},
		{"Cohesion", format.Quantity(in.Cohesion, u.Stress)},
		{"Friction angle", fmt.Sprintf("%d°", in.FrictionAngle)},
		{"Depth", format.Quantity(in.Depth, u.Length)},
		{"Width", format.Quantity(in.Width, u.Length)},
		{"Unit weight", format.Quantity(in.UnitWeight, u.UnitWeight)},
		{"Unit weight of water", format.Quantity(r.UnitWeightWater, u.UnitWeight)},
		{"Groundwater depth", groundwater},
		{"Water table", r.Zone.String()},
		{"Effective unit weight", format.Quantity(r.EffectiveUnitWeight, u.UnitWeight)},
		{"Effective stress", format.Quantity(r.EffectiveStress, u.Stress)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-22s| %s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	factors, equation := Breakdown(r)
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n\n", factors, equation); err != nil {
		return err
	}

	if _, err := heading.Fprintf(w, "Ultimate bearing capacity: %s\n", format.Quantity(r.BearingCapacity, u.Stress)); err != nil {
		return err
	}
	if a.HasAllowable() {
		if _, err := fmt.Fprintf(w, "Allowable bearing capacity (FS %s): %s\n",
			format.Plain(a.FactorOfSafety), format.Quantity(a.AllowableBearingCapacity, u.Stress)); err != nil {
			return err
		}
	}
	for _, warning := range a.Warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs a single header row and a single value row.
func CsvFormat(w io.Writer, a *analysis.Analysis) error {
	r := a.Result
	terms := r.Terms()
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	allowable := ""
	if a.HasAllowable() {
		allowable = f(a.AllowableBearingCapacity)
	}

	records := [][]string{
		{
			"name", "shape", "cohesion", "friction angle", "depth", "unit weight", "width",
			"groundwater depth", "groundwater defaulted", "unit weight of water",
			"nc", "nq", "ngamma", "c1", "c2", "c3",
			"effective unit weight", "effective stress",
			"cohesion term", "surcharge term", "self-weight term",
			"bearing capacity", "factor of safety", "allowable bearing capacity",
		},
		{
			a.Name, string(r.Input.Shape), f(r.Input.Cohesion), strconv.Itoa(r.Input.FrictionAngle),
			f(r.Input.Depth), f(r.Input.UnitWeight), f(r.Input.Width),
			f(r.GroundwaterDepth), strconv.FormatBool(r.GroundwaterDefaulted), f(r.UnitWeightWater),
			f(r.Factors.Nc), f(r.Factors.Nq), f(r.Factors.Ngamma),
			f(r.Coefficients.C1), f(r.Coefficients.C2), f(r.Coefficients.C3),
			f(r.EffectiveUnitWeight), f(r.EffectiveStress),
			f(terms.Cohesion), f(terms.Surcharge), f(terms.SelfWeight),
			f(r.BearingCapacity), f(a.FactorOfSafety), allowable,
		},
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat outputs the analysis as indented JSON.
func JSONFormat(w io.Writer, a *analysis.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// YAMLFormat outputs the analysis as YAML.
func YAMLFormat(w io.Writer, a *analysis.Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}
