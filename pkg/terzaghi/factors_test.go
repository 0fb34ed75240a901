package terzaghi

import (
	"errors"
	"testing"
)

func TestLookupFactorsCoversEveryTabulatedAngle(t *testing.T) {
	previous := Factors{}
	for angle := 0; angle <= 41; angle++ {
		f, err := LookupFactors(angle)
		if err != nil {
			t.Fatalf("LookupFactors(%d) error = %v", angle, err)
		}
		if f.Nc < 1 || f.Nq < 1 {
			t.Errorf("LookupFactors(%d) = %+v, expected Nc and Nq >= 1", angle, f)
		}
		if f.Ngamma < 0 {
			t.Errorf("LookupFactors(%d) Ngamma = %v, expected non-negative", angle, f.Ngamma)
		}
		if angle > 0 && (f.Nc < previous.Nc || f.Nq < previous.Nq || f.Ngamma < previous.Ngamma) {
			t.Errorf("LookupFactors(%d) = %+v decreased from %+v", angle, f, previous)
		}
		previous = f
	}
}

func TestLookupFactorsKnownRows(t *testing.T) {
	tests := []struct {
		name     string
		angle    int
		expected Factors
	}{
		{"Frictionless clay", 0, Factors{Nc: 5.7, Nq: 1, Ngamma: 0}},
		{"Loose sand", 20, Factors{Nc: 17.7, Nq: 7.4, Ngamma: 4.4}},
		{"Medium dense sand", 30, Factors{Nc: 37.2, Nq: 22.5, Ngamma: 20.1}},
		{"Upper end of table", 41, Factors{Nc: 106.8, Nq: 93.8, Ngamma: 148.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := LookupFactors(tt.angle)
			if err != nil {
				t.Fatalf("LookupFactors(%d) error = %v", tt.angle, err)
			}
			if f != tt.expected {
				t.Errorf("LookupFactors(%d) = %+v, expected %+v", tt.angle, f, tt.expected)
			}
		})
	}
}

func TestLookupFactorsRejectsUntabulatedAngles(t *testing.T) {
	for _, angle := range []int{-1, 42, 45, 90} {
		_, err := LookupFactors(angle)
		if !errors.Is(err, ErrUnsupportedFrictionAngle) {
			t.Errorf("LookupFactors(%d) error = %v, expected ErrUnsupportedFrictionAngle", angle, err)
		}
		if !IsDomainError(err) {
			t.Errorf("LookupFactors(%d) error should be a domain error", angle)
		}
	}
}

func TestFactorTableIsACopy(t *testing.T) {
	table := FactorTable()
	if len(table) != 42 {
		t.Fatalf("FactorTable() has %d rows, expected 42", len(table))
	}
	for i, row := range table {
		if row.Angle != i {
			t.Errorf("FactorTable()[%d].Angle = %d", i, row.Angle)
		}
	}

	table[30].Nc = 0
	f, _ := LookupFactors(30)
	if f.Nc != 37.2 {
		t.Errorf("modifying FactorTable() result changed lookup to %v", f.Nc)
	}
}
