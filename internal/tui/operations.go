package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/models"
	tea "github.com/charmbracelet/bubbletea"
)

type operation int

const (
	opEncrypt operation = iota
	opDecrypt
	opAnalyze
	opBruteForce
	operationsCount
)

func (o operation) String() string {
	switch o {
	case opEncrypt:
		return "encrypt"
	case opDecrypt:
		return "decrypt"
	case opAnalyze:
		return "analyze"
	case opBruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

func (o operation) usesShift() bool {
	return o == opEncrypt || o == opDecrypt
}

// runOperation returns a command that performs op against the server.
func runOperation(ctx context.Context, cipherAdapter adapter.CipherAdapter, op operation, text string, shift int) tea.Cmd {
	return func() tea.Msg {
		switch op {
		case opEncrypt:
			resp, err := cipherAdapter.Encrypt(ctx, text, shift)
			if err != nil {
				return resultMsg{err: err}
			}
			return resultMsg{body: "Encrypted: " + resp.EncryptedText + "\n\n" + statsView(resp.Stats), copyText: resp.EncryptedText}

		case opDecrypt:
			resp, err := cipherAdapter.Decrypt(ctx, text, shift)
			if err != nil {
				return resultMsg{err: err}
			}
			return resultMsg{body: "Decrypted: " + resp.DecryptedText + "\n\n" + statsView(resp.Stats), copyText: resp.DecryptedText}

		case opAnalyze:
			resp, err := cipherAdapter.Analyze(ctx, text)
			if err != nil {
				return resultMsg{err: err}
			}
			return resultMsg{body: statsView(resp.Stats)}

		case opBruteForce:
			resp, err := cipherAdapter.BruteForce(ctx, text)
			if err != nil {
				return resultMsg{err: err}
			}
			var b strings.Builder
			for _, candidate := range resp.AllPossibilities {
				fmt.Fprintf(&b, "%2d: %s\n", candidate.Shift, candidate.DecryptedText)
			}
			body := strings.TrimRight(b.String(), "\n")
			return resultMsg{body: body, copyText: body}
		}

		return resultMsg{err: fmt.Errorf("unknown operation %d", op)}
	}
}

func statsView(stats models.TextStatistics) string {
	return fmt.Sprintf(
		"Total: %d  Alphabetic: %d  Non-alphabetic: %d\nUppercase: %d  Lowercase: %d  Words: %d",
		stats.TotalChars, stats.AlphabeticChars, stats.NonAlphabeticChars,
		stats.UppercaseChars, stats.LowercaseChars, stats.Words,
	)
}
