package testutil

import (
	"os"
	"testing"

	"github.com/iwvelando/terzaghi-bearing/pkg/terzaghi"
)

func TestFindFactorRow(t *testing.T) {
	table := terzaghi.FactorTable()

	tests := []struct {
		name        string
		angle       int
		expectFound bool
		expectedNc  float64
	}{
		{name: "First row", angle: 0, expectFound: true, expectedNc: 5.7},
		{name: "Worked example row", angle: 30, expectFound: true, expectedNc: 37.2},
		{name: "Last row", angle: 41, expectFound: true, expectedNc: 106.8},
		{name: "Past the table", angle: 42, expectFound: false},
		{name: "Negative", angle: -1, expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FindFactorRow(table, tt.angle)
			if !tt.expectFound {
				if row != nil {
					t.Errorf("FindFactorRow(%d) = %+v, want nil", tt.angle, *row)
				}
				return
			}
			if row == nil {
				t.Fatalf("FindFactorRow(%d) = nil, want a row", tt.angle)
			}
			if row.Nc != tt.expectedNc {
				t.Errorf("FindFactorRow(%d).Nc = %v, want %v", tt.angle, row.Nc, tt.expectedNc)
			}
		})
	}
}

func TestFindFactorRowEmpty(t *testing.T) {
	if row := FindFactorRow(nil, 30); row != nil {
		t.Errorf("FindFactorRow(nil, 30) = %+v, want nil", *row)
	}
}

func TestWriteConfig(t *testing.T) {
	path := WriteConfig(t, t.TempDir(), "foundation:\n  width: 1\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "foundation:\n  width: 1\n" {
		t.Errorf("unexpected contents %q", string(data))
	}
}
