// Package report writes bearing capacity analyses to PDF and XLSX files.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/pkg/format"
	"github.com/iwvelando/terzaghi-bearing/pkg/output"
	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a one page calculation sheet for a.
func WritePDF(w io.Writer, a *analysis.Analysis) error {
	u := format.UnitsFor(a.UnitSystem)
	r := a.Result
	in := r.Input

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Terzaghi bearing capacity", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Terzaghi Bearing Capacity")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	name := a.Name
	if name == "" {
		name = "unnamed footing"
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Footing: %s", name)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Analysis ID: %s", a.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	groundwater := format.Quantity(r.GroundwaterDepth, u.Length)
	if r.GroundwaterDefaulted {
		groundwater += " (not given)"
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
		{"Nc / Nq / Ngamma", fmt.Sprintf("%s / %s / %s", format.Plain(r.Factors.Nc), format.Plain(r.Factors.Nq), format.Plain(r.Factors.Ngamma))},
		{"c1 / c2 / c3", fmt.Sprintf("%s / %s / %s", format.Plain(r.Coefficients.C1), format.Plain(r.Coefficients.C2), format.Plain(r.Coefficients.C3))},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(110, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	_, equation := output.Breakdown(r)
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 6, "q = c1*c*Nc + c2*s'*Nq + c3*g'*B*Ng\n"+equation, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Ultimate bearing capacity: "+format.Quantity(r.BearingCapacity, u.Stress)))
	pdf.Ln(8)
	if a.HasAllowable() {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Allowable bearing capacity (FS %s): %s",
			format.Plain(a.FactorOfSafety), format.Quantity(a.AllowableBearingCapacity, u.Stress))))
		pdf.Ln(8)
	}

	if len(a.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		for _, warning := range a.Warnings {
			pdf.MultiCell(0, 5, tr("Warning: "+warning), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
