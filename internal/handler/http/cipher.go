package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/utils"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCipherRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.CipherService.Encrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EncryptResponse{
		Success:       true,
		OriginalText:  result.OriginalText,
		EncryptedText: result.TransformedText,
		Shift:         result.Shift,
		Stats:         result.Stats,
	}, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCipherRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.CipherService.Decrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DecryptResponse{
		Success:       true,
		OriginalText:  result.OriginalText,
		DecryptedText: result.TransformedText,
		Shift:         result.Shift,
		Stats:         result.Stats,
	}, http.StatusOK)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCipherRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.CipherService.Analyze(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AnalyzeResponse{
		Success: true,
		Text:    req.Text,
		Stats:   stats,
	}, http.StatusOK)
}

func (h *Handler) bruteForce(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCipherRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.CipherService.BruteForce(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BruteForceResponse{
		Success:          true,
		OriginalText:     result.OriginalText,
		AllPossibilities: result.AllPossibilities,
	}, http.StatusOK)
}

var jsonNull = []byte("null")

// decodeCipherRequest reads the whole body and decodes it into a
// models.CipherRequest, classifying failures into the sentinel errors of
// this package.
func decodeCipherRequest(r *http.Request) (models.CipherRequest, error) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.CipherRequest{}, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return models.CipherRequest{}, fmt.Errorf("error reading request body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, jsonNull) {
		return models.CipherRequest{}, ErrNoJSONData
	}

	var req models.CipherRequest
	if err = json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return models.CipherRequest{}, fmt.Errorf("%w: field %q: %w", ErrInvalidInputParameters, typeErr.Field, err)
		}
		return models.CipherRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	log.Debug().Int("text_length", len(req.Text)).Str("shift", string(req.Shift)).Msg("request decoded")

	return req, nil
}
