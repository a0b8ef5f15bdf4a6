package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

// Field name constants used to scope validation of a CipherRequest.
const (
	// FieldText targets the text to transform or analyze.
	FieldText = "text"

	// FieldShift targets the rotation key.
	FieldShift = "shift"
)

// CipherRequestValidator implements the Validator interface for
// models.CipherRequest.
type CipherRequestValidator struct {
}

// NewCipherRequestValidator constructs a new CipherRequestValidator
// and returns it as the Validator interface.
func NewCipherRequestValidator() Validator {
	return &CipherRequestValidator{}
}

// Validate checks a models.CipherRequest (value or pointer).
//
// Fields are checked in the order given. When no fields are given, text and
// shift are both validated, text first.
func (v *CipherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CipherRequest:
		return v.validateCipherRequest(ctx, value, fields...)
	case *models.CipherRequest:
		return v.validateCipherRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CipherRequestValidator) validateCipherRequest(_ context.Context, req models.CipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldShift}
	}

	for _, field := range fields {
		switch field {
		case FieldText:
			if req.Text == "" {
				return ErrTextRequired
			}
		case FieldShift:
			shift, ok := req.ShiftValue()
			if !ok {
				return fmt.Errorf("%w: got %q", ErrInvalidShift, string(req.Shift))
			}
			if shift < cipher.MinShift || shift > cipher.MaxShift {
				return fmt.Errorf("%w: got %d", ErrInvalidShift, shift)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
