package ics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a numeric parameter is outside of
	// its domain: non-positive masses, radii or scales, fractions outside of
	// [0, 1], non-finite values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned when an operation is called before the
	// stage it depends on, e.g. adding a planet to a system with no star.
	ErrInvalidState = errors.New("invalid state")
	// ErrDivisionUndefined is returned when a quantity would be normalized by
	// a zero total mass.
	ErrDivisionUndefined = errors.New("division undefined")
)

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidStatef returns an error wrapping ErrInvalidState.
func InvalidStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// DivisionUndefinedf returns an error wrapping ErrDivisionUndefined.
func DivisionUndefinedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDivisionUndefined, fmt.Sprintf(format, args...))
}
