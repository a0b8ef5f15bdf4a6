package models

// EncryptResponse is returned by POST /api/encrypt.
type EncryptResponse struct {
	Success       bool           `json:"success"`
	OriginalText  string         `json:"original_text"`
	EncryptedText string         `json:"encrypted_text"`
	Shift         int            `json:"shift"`
	Stats         TextStatistics `json:"stats"`
}

// DecryptResponse is returned by POST /api/decrypt.
type DecryptResponse struct {
	Success       bool           `json:"success"`
	OriginalText  string         `json:"original_text"`
	DecryptedText string         `json:"decrypted_text"`
	Shift         int            `json:"shift"`
	Stats         TextStatistics `json:"stats"`
}

// AnalyzeResponse is returned by POST /api/analyze.
type AnalyzeResponse struct {
	Success bool           `json:"success"`
	Text    string         `json:"text"`
	Stats   TextStatistics `json:"stats"`
}

// BruteForceResponse is returned by POST /api/brute-force.
// AllPossibilities always holds one entry per shift, 1 through 25.
type BruteForceResponse struct {
	Success          bool                  `json:"success"`
	OriginalText     string                `json:"original_text"`
	AllPossibilities []BruteForceCandidate `json:"all_possibilities"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
