package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/mock"
	"github.com/MKhiriev/go-caesar-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, command config.Command) (*App, *mock.MockCipherAdapter, *bytes.Buffer, *[]string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cipherAdapter := mock.NewMockCipherAdapter(ctrl)
	var out bytes.Buffer

	app := NewApp(cipherAdapter, command, &out, logger.Nop())

	var copied []string
	app.copyFn = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	return app, cipherAdapter, &out, &copied
}

func TestApp_Run_Encrypt(t *testing.T) {
	app, cipherAdapter, out, copied := newTestApp(t, config.Command{
		Operation:       "encrypt",
		Text:            "Hello, World!",
		Shift:           3,
		CopyToClipboard: true,
	})
	cipherAdapter.EXPECT().
		Encrypt(gomock.Any(), "Hello, World!", 3).
		Return(models.EncryptResponse{
			Success:       true,
			OriginalText:  "Hello, World!",
			EncryptedText: "Khoor, Zruog!",
			Shift:         3,
			Stats:         models.TextStatistics{TotalChars: 13, Words: 2},
		}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Khoor, Zruog!")
	assert.Contains(t, out.String(), "Hello, World!")
	assert.Contains(t, out.String(), "13")
	assert.Contains(t, out.String(), "copied 13 characters")
	assert.Equal(t, []string{"Khoor, Zruog!"}, *copied)
}

func TestApp_Run_Decrypt_NoCopy(t *testing.T) {
	app, cipherAdapter, out, copied := newTestApp(t, config.Command{Operation: "decrypt", Text: "Khoor", Shift: 3})
	cipherAdapter.EXPECT().
		Decrypt(gomock.Any(), "Khoor", 3).
		Return(models.DecryptResponse{Success: true, OriginalText: "Khoor", DecryptedText: "Hello", Shift: 3}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Hello")
	assert.NotContains(t, out.String(), "clipboard")
	assert.Empty(t, *copied)
}

func TestApp_Run_Analyze(t *testing.T) {
	app, cipherAdapter, out, _ := newTestApp(t, config.Command{Operation: "analyze", Text: "a b c"})
	cipherAdapter.EXPECT().
		Analyze(gomock.Any(), "a b c").
		Return(models.AnalyzeResponse{Success: true, Text: "a b c", Stats: models.TextStatistics{Words: 3, LowercaseChars: 3}}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Words")
	assert.Contains(t, out.String(), "3")
}

func TestApp_Run_BruteForce(t *testing.T) {
	candidates := make([]models.BruteForceCandidate, 0, 25)
	for shift := 1; shift <= 25; shift++ {
		candidates = append(candidates, models.BruteForceCandidate{Shift: shift, DecryptedText: fmt.Sprintf("candidate-%d", shift)})
	}

	app, cipherAdapter, out, copied := newTestApp(t, config.Command{Operation: "brute-force", Text: "Khoor", CopyToClipboard: true})
	cipherAdapter.EXPECT().
		BruteForce(gomock.Any(), "Khoor").
		Return(models.BruteForceResponse{Success: true, OriginalText: "Khoor", AllPossibilities: candidates}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "candidate-1\n")
	assert.Contains(t, out.String(), "candidate-25\n")
	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "3: candidate-3\n")
}

func TestApp_Run_Info(t *testing.T) {
	app, cipherAdapter, out, _ := newTestApp(t, config.Command{Operation: "info"})
	cipherAdapter.EXPECT().
		Info(gomock.Any()).
		Return(models.ServiceInfo{
			Message:   "Caesar Cipher API",
			Version:   "1.0",
			Endpoints: map[string]string{"encrypt": "/api/encrypt", "decrypt": "/api/decrypt"},
			Formulas:  models.Formulas{Encryption: "C = (P + K) mod 26", Decryption: "P = (C - K) mod 26"},
		}, nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Caesar Cipher API v1.0")
	assert.Contains(t, out.String(), "/api/decrypt")
	assert.Contains(t, out.String(), "C = (P + K) mod 26")
}

func TestApp_Run_AdapterError(t *testing.T) {
	app, cipherAdapter, out, copied := newTestApp(t, config.Command{Operation: "encrypt", Text: "abc", Shift: 30, CopyToClipboard: true})
	serverErr := fmt.Errorf("encrypt: %w: Shift must be an integer between 1 and 25", adapter.ErrBadRequest)
	cipherAdapter.EXPECT().Encrypt(gomock.Any(), "abc", 30).Return(models.EncryptResponse{}, serverErr)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Empty(t, out.String())
	assert.Empty(t, *copied)
}

func TestApp_Run_ClipboardFailureIsNotFatal(t *testing.T) {
	app, cipherAdapter, out, _ := newTestApp(t, config.Command{Operation: "encrypt", Text: "a", Shift: 1, CopyToClipboard: true})
	app.copyFn = func(string) error { return assert.AnError }
	cipherAdapter.EXPECT().Encrypt(gomock.Any(), "a", 1).Return(models.EncryptResponse{EncryptedText: "b", OriginalText: "a", Shift: 1}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.NotContains(t, out.String(), "copied")
}

func TestApp_Run_UnknownOperation(t *testing.T) {
	app, _, _, _ := newTestApp(t, config.Command{Operation: "rot13"})

	assert.ErrorIs(t, app.Run(context.Background()), config.ErrInvalidCommand)
}

func TestApp_Run_Interactive(t *testing.T) {
	app, _, _, _ := newTestApp(t, config.Command{Operation: "interactive", Text: "seed", Shift: 5})

	var gotText string
	var gotShift int
	app.interactive = func(_ context.Context, text string, shift int) error {
		gotText, gotShift = text, shift
		return nil
	}

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "seed", gotText)
	assert.Equal(t, 5, gotShift)
}
