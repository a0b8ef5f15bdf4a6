// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	handlerhttp "github.com/MKhiriev/go-caesar-cipher/internal/handler/http"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpCipherAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) CipherAdapter {
	t.Helper()

	a, err := NewHTTPCipherAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// newCipherServer runs the real HTTP gateway in an httptest server.
func newCipherServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Server{
		HTTPAddress:    config.DefaultHTTPAddress,
		MaxBodyBytes:   config.DefaultMaxBodyBytes,
		AllowedOrigins: []string{"*"},
	}
	services, err := service.NewServices(config.StructuredConfig{
		App: config.App{Name: config.DefaultAppName, Version: config.DefaultAppVersion},
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

// ── against the real gateway ────────────────────────────────────────────────

func TestHTTPCipherAdapter_AgainstGateway(t *testing.T) {
	a := newTestAdapter(t, newCipherServer(t).URL)
	ctx := context.Background()

	info, err := a.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAppName, info.Message)
	assert.Len(t, info.Endpoints, 4)

	enc, err := a.Encrypt(ctx, "Hello, World!", 3)
	require.NoError(t, err)
	assert.True(t, enc.Success)
	assert.Equal(t, "Khoor, Zruog!", enc.EncryptedText)
	assert.Equal(t, 13, enc.Stats.TotalChars)

	dec, err := a.Decrypt(ctx, enc.EncryptedText, 3)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", dec.DecryptedText)

	stats, err := a.Analyze(ctx, "two words")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stats.Words)

	bf, err := a.BruteForce(ctx, "Khoor")
	require.NoError(t, err)
	require.Len(t, bf.AllPossibilities, 25)
	assert.Equal(t, "Hello", bf.AllPossibilities[2].DecryptedText)
}

func TestHTTPCipherAdapter_GatewayValidationErrors(t *testing.T) {
	a := newTestAdapter(t, newCipherServer(t).URL)

	_, err := a.Encrypt(context.Background(), "abc", 30)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Shift must be an integer between 1 and 25")

	_, err = a.Decrypt(context.Background(), "", 3)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Text field is required")
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestHTTPCipherAdapter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "400", status: http.StatusBadRequest, body: `{"error":"Invalid JSON data"}`, wantErr: ErrBadRequest, wantMessage: "Invalid JSON data"},
		{name: "404", status: http.StatusNotFound, body: `{"error":"Endpoint not found"}`, wantErr: ErrNotFound, wantMessage: "Endpoint not found"},
		{name: "405", status: http.StatusMethodNotAllowed, body: `{"error":"Method not allowed"}`, wantErr: ErrMethodNotAllowed, wantMessage: "Method not allowed"},
		{name: "413", status: http.StatusRequestEntityTooLarge, body: `{"error":"Request body too large"}`, wantErr: ErrRequestTooLarge, wantMessage: "Request body too large"},
		{name: "500", status: http.StatusInternalServerError, body: `{"error":"Internal server error"}`, wantErr: ErrInternalServerError, wantMessage: "Internal server error"},
		{name: "plain text body", status: http.StatusBadGateway, body: "upstream down", wantMessage: "http 502: upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, wantMessage: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/analyze", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Analyze(context.Background(), "abc")

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestHTTPCipherAdapter_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Info(context.Background())
	assert.Error(t, err)
}

func TestHTTPCipherAdapter_ContextCancelled(t *testing.T) {
	srv := newCipherServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Encrypt(ctx, "abc", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{raw: "  localhost:5000 ", want: "http://localhost:5000"},
		{raw: "https://cipher.example/api/", want: "https://cipher.example/api"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCipherAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPCipherAdapter(config.Adapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}
