package models

// ServiceInfo is the metadata served on GET /.
type ServiceInfo struct {
	// Message is the human-readable service name.
	Message string `json:"message"`

	// Version is the API version reported to clients.
	Version string `json:"version"`

	// Endpoints maps an operation name to its route.
	Endpoints map[string]string `json:"endpoints"`

	// Formulas holds the encryption and decryption formulas in text form.
	Formulas Formulas `json:"formulas"`
}

// Formulas documents the arithmetic used by the cipher.
type Formulas struct {
	Encryption string `json:"encryption"`
	Decryption string `json:"decryption"`
}
