package report

import (
	"fmt"
	"io"

	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/pkg/format"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the workbook.
const (
	SummarySheet = "Bearing Capacity"
	FactorsSheet = "Factors"
)

// WriteXLSX writes a workbook with the analysis on the first sheet and the
// full factor table on the second.
func WriteXLSX(w io.Writer, a *analysis.Analysis) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, a); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}

	if _, err := f.NewSheet(FactorsSheet); err != nil {
		return err
	}
	if err := writeFactors(f, terzaghi.FactorTable()); err != nil {
		return fmt.Errorf("failed to write factors sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, a *analysis.Analysis) error {
	u := format.UnitsFor(a.UnitSystem)
	r := a.Result
	in := r.Input
	terms := r.Terms()

	rows := [][]interface{}{
		{"Footing", a.Name, ""},
		{"Analysis ID", a.ID, ""},
		{"Shape", string(in.Shape), ""},
		{"Cohesion", in.Cohesion, u.Stress},
		{"Friction angle", in.FrictionAngle, "°"},
		{"Depth", in.Depth, u.Length},
		{"Width", in.Width, u.Length},
		{"Unit weight", in.UnitWeight, u.UnitWeight},
		{"Unit weight of water", r.UnitWeightWater, u.UnitWeight},
		{"Groundwater depth", r.GroundwaterDepth, u.Length},
		{"Groundwater defaulted", r.GroundwaterDefaulted, ""},
		{"Water table", r.Zone.String(), ""},
		{"Effective unit weight", r.EffectiveUnitWeight, u.UnitWeight},
		{"Effective stress", r.EffectiveStress, u.Stress},
		{"Nc", r.Factors.Nc, ""},
		{"Nq", r.Factors.Nq, ""},
		{"Nγ", r.Factors.Ngamma, ""},
		{"c1", r.Coefficients.C1, ""},
		{"c2", r.Coefficients.C2, ""},
		{"c3", r.Coefficients.C3, ""},
		{"Cohesion term", terms.Cohesion, u.Stress},
		{"Surcharge term", terms.Surcharge, u.Stress},
		{"Self-weight term", terms.SelfWeight, u.Stress},
		{"Ultimate bearing capacity", r.BearingCapacity, u.Stress},
	}
	if a.HasAllowable() {
		rows = append(rows,
			[]interface{}{"Factor of safety", a.FactorOfSafety, ""},
			[]interface{}{"Allowable bearing capacity", a.AllowableBearingCapacity, u.Stress},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 28)
}

func writeFactors(f *excelize.File, table []terzaghi.AngleFactors) error {
	header := []interface{}{"Friction angle (°)", "Nc", "Nq", "Nγ"}
	if err := f.SetSheetRow(FactorsSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Angle, row.Nc, row.Nq, row.Ngamma}
		if err := f.SetSheetRow(FactorsSheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SetColWidth(FactorsSheet, "A", "A", 20)
}
