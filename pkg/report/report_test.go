package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/terzaghi-bearing/internal/analysis"
	"github.com/iwvelando/terzaghi-bearing/internal/config"
	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testAnalysis(t *testing.T) *analysis.Analysis {
	t.Helper()
	result, err := terzaghi.Compute(terzaghi.FoundationInput{
		Cohesion:         0,
		FrictionAngle:    30,
		Depth:            3.5,
		UnitWeight:       100,
		Width:            1,
		Shape:            terzaghi.ShapeSquare,
		GroundwaterDepth: terzaghi.WaterTable(3.5),
	})
	require.NoError(t, err)
	return &analysis.Analysis{
		ID:                       "0b8e7f7e-3a55-4c53-8f59-9f35f3c6a8d2",
		Name:                     "F1",
		UnitSystem:               "imperial",
		Result:                   result,
		FactorOfSafety:           3,
		AllowableBearingCapacity: result.BearingCapacity / 3,
		Warnings:                 []string{"Unit weight 18.00 is unusually low for pcf - was it written in kN/m³?"},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testAnalysis(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is not a PDF")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testAnalysis(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	assert.Equal(t, []string{SummarySheet, FactorsSheet}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 26)
	assert.Equal(t, "Footing", rows[0][0])
	assert.Equal(t, "F1", rows[0][1])
	assert.Equal(t, "Ultimate bearing capacity", rows[23][0])
	assert.Equal(t, "Allowable bearing capacity", rows[25][0])
	assert.Equal(t, "psf", rows[23][2])

	factorRows, err := f.GetRows(FactorsSheet)
	require.NoError(t, err)
	require.Len(t, factorRows, 43)
	assert.Equal(t, []string{"30", "37.2", "22.5", "20.1"}, factorRows[31])
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	conf := config.ReportConfig{
		PDF:  filepath.Join(dir, "out", "f1.pdf"),
		XLSX: filepath.Join(dir, "out", "f1.xlsx"),
	}
	require.NoError(t, Save(nil, conf, testAnalysis(t)))

	for _, path := range []string{conf.PDF, conf.XLSX} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSaveSkipsEmptyPaths(t *testing.T) {
	require.NoError(t, Save(nil, config.ReportConfig{}, testAnalysis(t)))
}
