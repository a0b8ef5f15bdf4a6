package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTextRequired = errors.New("text field is required")
	ErrInvalidShift = errors.New("shift must be an integer between 1 and 25")
)
