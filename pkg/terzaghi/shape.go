package terzaghi

import (
	"strings"
)

// Shape is the plan shape of a footing.
type Shape string

const (
	ShapeSquare     Shape = "square"
	ShapeContinuous Shape = "continuous"
	ShapeCircular   Shape = "circular"
)

// Coefficients are the shape multipliers applied to the cohesion, surcharge
// and self-weight terms respectively.
type Coefficients struct {
	C1 float64 `json:"c1" yaml:"c1"`
	C2 float64 `json:"c2" yaml:"c2"`
	C3 float64 `json:"c3" yaml:"c3"`
}

var shapeCoefficients = map[Shape]Coefficients{
	ShapeSquare:     {C1: 1.3, C2: 1.0, C3: 0.4},
	ShapeContinuous: {C1: 1.0, C2: 1.0, C3: 0.5},
	ShapeCircular:   {C1: 1.3, C2: 1.0, C3: 0.3},
}

// Shapes lists the supported footing shapes.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeContinuous, ShapeCircular}
}

// ParseShape converts a user supplied name into a Shape. Matching ignores
// case and surrounding whitespace.
func ParseShape(name string) (Shape, error) {
	shape := Shape(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := shapeCoefficients[shape]; !ok {
		return "", &InputError{Field: "shape", Value: name, Kind: KindInvalidArgument, Err: ErrUnsupportedShape}
	}
	return shape, nil
}

// ShapeCoefficients returns the coefficients for shape.
func ShapeCoefficients(shape Shape) (Coefficients, error) {
	c, ok := shapeCoefficients[shape]
	if !ok {
		return Coefficients{}, &InputError{Field: "shape", Value: string(shape), Kind: KindInvalidArgument, Err: ErrUnsupportedShape}
	}
	return c, nil
}
