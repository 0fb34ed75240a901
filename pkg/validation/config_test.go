package validation

import (
	"strings"
	"testing"
)

func TestValidateSubmergedUnitWeight(t *testing.T) {
	tests := []struct {
		name        string
		unitWeight  float64
		gammaW      float64
		wantWarning bool
	}{
		{"Typical imperial soil", 120, 62.4, false},
		{"Exactly water", 62.4, 62.4, false},
		{"Lighter than water", 50, 62.4, true},
		{"SI soil", 18, 9.81, false},
		{"SI value with imperial water", 18, 62.4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateSubmergedUnitWeight(tt.unitWeight, tt.gammaW)
			if (warning != "") != tt.wantWarning {
				t.Errorf("ValidateSubmergedUnitWeight(%v, %v) = %q, wantWarning %v", tt.unitWeight, tt.gammaW, warning, tt.wantWarning)
			}
		})
	}
}

func TestValidatePlausibleUnitWeight(t *testing.T) {
	tests := []struct {
		name        string
		system      string
		unitWeight  float64
		wantWarning string
	}{
		{"Imperial typical", "imperial", 115, ""},
		{"Imperial looks like SI", "imperial", 18, "pcf"},
		{"Imperial zero is left alone", "imperial", 0, ""},
		{"SI typical", "si", 19, ""},
		{"SI looks like imperial", "si", 120, "kN/m³"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidatePlausibleUnitWeight(tt.system, tt.unitWeight)
			if tt.wantWarning == "" {
				if warning != "" {
					t.Errorf("unexpected warning %q", warning)
				}
				return
			}
			if !strings.Contains(warning, tt.wantWarning) {
				t.Errorf("warning %q does not mention %q", warning, tt.wantWarning)
			}
		})
	}
}

func TestValidateGroundwaterDepth(t *testing.T) {
	if warning := ValidateGroundwaterDepth(0); warning != "" {
		t.Errorf("water table at surface should not warn, got %q", warning)
	}
	if warning := ValidateGroundwaterDepth(4); warning != "" {
		t.Errorf("water table below surface should not warn, got %q", warning)
	}
	if warning := ValidateGroundwaterDepth(-0.5); !strings.Contains(warning, "above the ground surface") {
		t.Errorf("water table above surface should warn, got %q", warning)
	}
}

func TestValidateFactorOfSafety(t *testing.T) {
	tests := []struct {
		fs          float64
		wantWarning bool
	}{
		{0, false},
		{0.5, true},
		{1, false},
		{3, false},
	}

	for _, tt := range tests {
		warning := ValidateFactorOfSafety(tt.fs)
		if (warning != "") != tt.wantWarning {
			t.Errorf("ValidateFactorOfSafety(%v) = %q, wantWarning %v", tt.fs, warning, tt.wantWarning)
		}
	}
}
