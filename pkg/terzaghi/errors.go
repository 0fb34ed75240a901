package terzaghi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFrictionAngle is returned for friction angles outside the
	// tabulated whole degrees 0 through 41.
	ErrUnsupportedFrictionAngle = errors.New("friction angle is not in the Terzaghi factor table")

	// ErrUnsupportedShape is returned for footing shapes other than square,
	// continuous and circular.
	ErrUnsupportedShape = errors.New("shape must be 'square', 'continuous', or 'circular'")

	// ErrNonPositiveWidth is returned when the footing width is zero, negative or NaN.
	ErrNonPositiveWidth = errors.New("footing width must be greater than zero")

	// ErrNonPositiveFactorOfSafety is returned when an allowable capacity is
	// requested with a factor of safety that is not greater than zero.
	ErrNonPositiveFactorOfSafety = errors.New("factor of safety must be greater than zero")
)

// ErrorKind classifies an InputError.
type ErrorKind int

const (
	// KindInvalidArgument marks values that are never acceptable for the field.
	KindInvalidArgument ErrorKind = iota
	// KindDomain marks values outside the range covered by empirical data.
	KindDomain
)

func (k ErrorKind) String() string {
	switch k {
	case KindDomain:
		return "domain error"
	default:
		return "invalid argument"
	}
}

// InputError reports which input field was rejected and why.
type InputError struct {
	Field string
	Value interface{}
	Kind  ErrorKind
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %v: %v", e.Kind, e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsDomainError reports whether err was caused by an input outside the
// tabulated domain.
func IsDomainError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr) && inputErr.Kind == KindDomain
}

// IsInvalidArgument reports whether err was caused by an unacceptable input value.
func IsInvalidArgument(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr) && inputErr.Kind == KindInvalidArgument
}
