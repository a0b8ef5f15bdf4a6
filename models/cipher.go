package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CipherRequest is the JSON body accepted by the cipher endpoints.
//
// Shift is kept as the raw JSON token so that values which merely look like
// integers (3.0, "3", true) can be told apart from real integer literals.
// Analyze and brute-force requests leave it empty.
type CipherRequest struct {
	// Text is the plaintext or ciphertext to transform.
	Text string `json:"text"`

	// Shift is the rotation key, expected to be an integer literal in [1,25].
	Shift json.RawMessage `json:"shift,omitempty"`
}

// NewCipherRequest builds a CipherRequest with an integer shift.
func NewCipherRequest(text string, shift int) CipherRequest {
	return CipherRequest{
		Text:  text,
		Shift: strconv.AppendInt(nil, int64(shift), 10),
	}
}

// ShiftValue returns the shift as an int. ok is false when the shift is
// missing, null, or anything other than an integer literal.
func (r CipherRequest) ShiftValue() (shift int, ok bool) {
	raw := bytes.TrimSpace(r.Shift)
	if len(raw) == 0 {
		return 0, false
	}

	shift, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false
	}

	return shift, true
}

// CipherResult is the outcome of a single encrypt or decrypt operation.
type CipherResult struct {
	OriginalText    string
	TransformedText string
	Shift           int
	Stats           TextStatistics
}

// BruteForceCandidate is one decryption attempt made during brute force.
type BruteForceCandidate struct {
	Shift         int    `json:"shift"`
	DecryptedText string `json:"decrypted_text"`
}

// BruteForceResult holds every candidate decryption of a ciphertext,
// ordered by ascending shift.
type BruteForceResult struct {
	OriginalText     string
	AllPossibilities []BruteForceCandidate
}
