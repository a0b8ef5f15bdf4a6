package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the base error for every contract violation of
	// the engine's functions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShiftOutOfRange is returned when a shift lies outside [MinShift, MaxShift].
	ErrShiftOutOfRange = fmt.Errorf("%w: shift value must be between %d and %d", ErrInvalidArgument, MinShift, MaxShift)
)
