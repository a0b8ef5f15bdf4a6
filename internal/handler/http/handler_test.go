package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/mock"
	"github.com/MKhiriev/go-caesar-cipher/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     config.DefaultHTTPAddress,
		ShutdownTimeout: config.DefaultShutdownTimeout,
		MaxBodyBytes:    config.DefaultMaxBodyBytes,
		AllowedOrigins:  []string{"*"},
	}
}

// newTestRouter wires the router on top of the real services.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	services, err := service.NewServices(config.StructuredConfig{
		App: config.App{Name: config.DefaultAppName, Version: config.DefaultAppVersion},
	}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, testServerConfig(), logger.Nop()).Init()
}

// newMockedRouter wires the router on top of a gomock CipherService.
func newMockedRouter(t *testing.T) (http.Handler, *mock.MockCipherService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cipherService := mock.NewMockCipherService(ctrl)
	appInfoService := mock.NewMockAppInfoService(ctrl)

	services := &service.Services{
		CipherService:  cipherService,
		AppInfoService: appInfoService,
	}

	return NewHandler(services, testServerConfig(), logger.Nop()).Init(), cipherService
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	cfg := testServerConfig()
	l := logger.Nop()

	h := NewHandler(services, cfg, l)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, l, h.logger)
	assert.Equal(t, cfg, h.cfg)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testServerConfig(), logger.Nop())
	h2 := NewHandler(&service.Services{}, testServerConfig(), logger.Nop())

	assert.NotSame(t, h1, h2)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
