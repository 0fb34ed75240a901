package terzaghi

import (
	"github.com/iwvelando/terzaghi-bearing/pkg/constants"
)

// Factors holds the Terzaghi bearing capacity factors for one friction angle.
type Factors struct {
	Nc     float64 `json:"nc" yaml:"nc"`
	Nq     float64 `json:"nq" yaml:"nq"`
	Ngamma float64 `json:"ngamma" yaml:"ngamma"`
}

// AngleFactors pairs a tabulated friction angle with its factors.
type AngleFactors struct {
	Angle int `json:"angle" yaml:"angle"`
	Factors `yaml:",inline"`
}

// factorTable is indexed by friction angle in whole degrees.
var factorTable = [constants.MaxFrictionAngle + 1]Factors{
	{5.7, 1, 0},
	{6, 1.1, .1},
	{6.3, 1.2, .1},
	{6.6, 1.3, .2},
	{7, 1.5, .3},
	{7.3, 1.6, .4},
	{7.7, 1.8, .5},
	{8.2, 2, .6},
	{8.6, 2.2, .7},
	{9.1, 2.4, .9},
	{9.6, 2.7, 1},
	{10.2, 3, 1.2},
	{10.8, 3.3, 1.4},
	{11.4, 3.6, 1.6},
	{12.1, 4, 1.9},
	{12.9, 4.4, 2.2},
	{13.7, 4.9, 2.5},
	{14.6, 5.5, 2.9},
	{15.5, 6, 3.3},
	{16.6, 6.7, 3.8},
	{17.7, 7.4, 4.4},
	{18.9, 8.3, 5.1},
	{20.3, 9.2, 5.9},
	{21.7, 10.2, 6.8},
	{23.4, 11.4, 7.9},
	{25.1, 12.7, 9.2},
	{27.1, 14.2, 10.7},
	{29.2, 15.9, 12.5},
	{31.6, 17.8, 14.6},
	{34.2, 20, 17.1},
	{37.2, 22.5, 20.1},
	{40.4, 25.3, 23.7},
	{44, 28.5, 28},
	{48.1, 32.2, 33.3},
	{52.6, 36.5, 39.6},
	{57.8, 41.4, 47.3},
	{63.5, 47.2, 56.7},
	{70.1, 53.8, 68.1},
	{77.5, 61.5, 82.3},
	{86, 70.6, 99.8},
	{95.7, 81.3, 121.5},
	{106.8, 93.8, 148.5},
}

// LookupFactors returns the bearing capacity factors for an exact tabulated
// friction angle. There is no interpolation between rows.
func LookupFactors(angle int) (Factors, error) {
	if angle < constants.MinFrictionAngle || angle > constants.MaxFrictionAngle {
		return Factors{}, &InputError{
			Field: "frictionAngle",
			Value: angle,
			Kind:  KindDomain,
			Err:   ErrUnsupportedFrictionAngle,
		}
	}
	return factorTable[angle], nil
}

// FactorTable returns a copy of the full table ordered by friction angle.
func FactorTable() []AngleFactors {
	table := make([]AngleFactors, len(factorTable))
	for angle, f := range factorTable {
		table[angle] = AngleFactors{Angle: angle, Factors: f}
	}
	return table
}
