package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up", 1.2346, 1.235},
		{"Round down", 1.2344, 1.234},
		{"No rounding needed", 8177.304, 8177.304},
		{"Float noise removed", 37.599999999999994, 37.6},
		{"Negative number", -131.6004, -131.6},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.0001, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		input    float64
		places   int
		expected float64
	}{
		{2725.768, 0, 2726},
		{2725.768, 1, 2725.8},
		{2725.768, 2, 2725.77},
		{1234.5, -2, 1200},
	}

	for _, tt := range tests {
		if got := RoundTo(tt.input, tt.places); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.places, got, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Float noise", 1e-12, true},
		{"Negative float noise", -1e-12, true},
		{"Small but real", 1e-6, false},
		{"Large", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Identical", 350, 350, 0, true},
		{"Inside tolerance", 8177.304, 8177.3041, 0.001, true},
		{"On tolerance", 1.0, 1.5, 0.5, true},
		{"Outside tolerance", 1.0, 1.6, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(tt.val1, tt.val2, tt.tolerance); result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}
