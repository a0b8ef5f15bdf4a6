package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/MKhiriev/go-caesar-cipher/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no json", ErrNoJSONData, http.StatusBadRequest, "No JSON data provided"},
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest, "Invalid JSON data"},
		{"wrong field type", ErrInvalidInputParameters, http.StatusBadRequest, "Invalid input parameters"},
		{"bad gzip stream", fmt.Errorf("error reading request body: %w", ErrInvalidGzipData), http.StatusBadRequest, "Invalid gzip data"},
		{"too large", ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"text required", fmt.Errorf("validation: %w", validators.ErrTextRequired), http.StatusBadRequest, "Text field is required"},
		{"invalid shift", fmt.Errorf("validation: %w", validators.ErrInvalidShift), http.StatusBadRequest, "Shift must be an integer between 1 and 25"},
		{"engine range error", fmt.Errorf("encrypt: %w", cipher.ErrShiftOutOfRange), http.StatusBadRequest, "Shift value must be between 1 and 25"},
		{"engine argument error", fmt.Errorf("%w: shift is not an integer", cipher.ErrInvalidArgument), http.StatusBadRequest, "Invalid input parameters"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
		})
	}
}
