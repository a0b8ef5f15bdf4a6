package cipher

import (
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/models"
)

const (
	// MinShift is the smallest accepted key.
	MinShift = 1
	// MaxShift is the largest accepted key.
	MaxShift = 25

	alphabetSize = 26
)

const (
	// EncryptionFormula describes Encrypt.
	EncryptionFormula = "C = (P + K) mod 26"
	// DecryptionFormula describes Decrypt.
	DecryptionFormula = "P = (C - K) mod 26"
)

// Encrypt rotates every ASCII letter of text forward by shift positions
// within its own case, C = (P + K) mod 26.
//
// Returns ErrShiftOutOfRange if shift is not in [MinShift, MaxShift].
func Encrypt(text string, shift int) (string, error) {
	if err := checkShift(shift); err != nil {
		return "", err
	}

	return rotate(text, shift), nil
}

// Decrypt is the inverse of Encrypt, P = (C - K) mod 26.
//
// Returns ErrShiftOutOfRange if shift is not in [MinShift, MaxShift].
func Decrypt(text string, shift int) (string, error) {
	if err := checkShift(shift); err != nil {
		return "", err
	}

	return rotate(text, -shift), nil
}

// BruteForce decrypts text with every key from MinShift to MaxShift and
// returns the candidates in ascending shift order.
func BruteForce(text string) []models.BruteForceCandidate {
	candidates := make([]models.BruteForceCandidate, 0, MaxShift-MinShift+1)
	for shift := MinShift; shift <= MaxShift; shift++ {
		candidates = append(candidates, models.BruteForceCandidate{
			Shift:         shift,
			DecryptedText: rotate(text, -shift),
		})
	}

	return candidates
}

func checkShift(shift int) error {
	if shift < MinShift || shift > MaxShift {
		return ErrShiftOutOfRange
	}
	return nil
}

// rotate shifts ASCII letters by delta, which may be negative.
func rotate(text string, delta int) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(shiftRune(r, 'A', delta))
		case r >= 'a' && r <= 'z':
			b.WriteRune(shiftRune(r, 'a', delta))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func shiftRune(r, base rune, delta int) rune {
	return base + rune(mod(int(r-base)+delta, alphabetSize))
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
