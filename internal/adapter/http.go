package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/internal/utils"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

type httpCipherAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCipherAdapter constructs the HTTP/REST implementation of
// [CipherAdapter]. It normalises and validates cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPCipherAdapter(cfg config.Adapter, logger *logger.Logger) (CipherAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCipherAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCipherAdapter) Info(ctx context.Context) (models.ServiceInfo, error) {
	var info models.ServiceInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return models.ServiceInfo{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceInfo{}, err
	}

	return info, nil
}

func (h *httpCipherAdapter) Encrypt(ctx context.Context, text string, shift int) (models.EncryptResponse, error) {
	var result models.EncryptResponse
	if err := h.post(ctx, "/api/encrypt", models.NewCipherRequest(text, shift), &result); err != nil {
		return models.EncryptResponse{}, fmt.Errorf("encrypt: %w", err)
	}
	return result, nil
}

func (h *httpCipherAdapter) Decrypt(ctx context.Context, text string, shift int) (models.DecryptResponse, error) {
	var result models.DecryptResponse
	if err := h.post(ctx, "/api/decrypt", models.NewCipherRequest(text, shift), &result); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("decrypt: %w", err)
	}
	return result, nil
}

func (h *httpCipherAdapter) Analyze(ctx context.Context, text string) (models.AnalyzeResponse, error) {
	var result models.AnalyzeResponse
	if err := h.post(ctx, "/api/analyze", models.CipherRequest{Text: text}, &result); err != nil {
		return models.AnalyzeResponse{}, fmt.Errorf("analyze: %w", err)
	}
	return result, nil
}

func (h *httpCipherAdapter) BruteForce(ctx context.Context, text string) (models.BruteForceResponse, error) {
	var result models.BruteForceResponse
	if err := h.post(ctx, "/api/brute-force", models.CipherRequest{Text: text}, &result); err != nil {
		return models.BruteForceResponse{}, fmt.Errorf("brute force: %w", err)
	}
	return result, nil
}

func (h *httpCipherAdapter) post(ctx context.Context, path string, body models.CipherRequest, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Dur("duration", resp.Time()).
		Msg("response received")

	return mapHTTPError(resp)
}
