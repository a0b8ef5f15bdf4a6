package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-caesar-cipher/internal/app"
	"github.com/MKhiriev/go-caesar-cipher/internal/cipher"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/utils"
	"github.com/MKhiriev/go-caesar-cipher/internal/validators"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; wrapped errors match their first
// listed sentinel.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrNoJSONData, errorResponse{http.StatusBadRequest, app.MsgNoJSONData}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidJSONData}},
	{ErrInvalidInputParameters, errorResponse{http.StatusBadRequest, app.MsgInvalidInputParameters}},
	{ErrRequestBodyTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgRequestBodyTooLarge}},
	{ErrInvalidGzipData, errorResponse{http.StatusBadRequest, app.MsgInvalidGzipData}},

	{validators.ErrTextRequired, errorResponse{http.StatusBadRequest, app.MsgTextRequired}},
	{validators.ErrInvalidShift, errorResponse{http.StatusBadRequest, app.MsgInvalidShift}},

	{cipher.ErrShiftOutOfRange, errorResponse{http.StatusBadRequest, app.MsgShiftOutOfRange}},
	{cipher.ErrInvalidArgument, errorResponse{http.StatusBadRequest, app.MsgInvalidInputParameters}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and renders it as a JSON error body. Details of
// unexpected errors are only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	writeErrorMessage(w, resp.message, resp.status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
