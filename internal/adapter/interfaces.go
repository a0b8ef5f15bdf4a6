// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// cipher server.
//
// The primary abstraction is [CipherAdapter], which decouples the CLI from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPCipherAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBadRequest] for
// 400). The server's own "error" message is kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-caesar-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CipherAdapter exposes the cipher server's endpoints as Go calls.
type CipherAdapter interface {
	// Info fetches the service description from GET /.
	Info(ctx context.Context) (models.ServiceInfo, error)

	// Encrypt calls POST /api/encrypt.
	Encrypt(ctx context.Context, text string, shift int) (models.EncryptResponse, error)

	// Decrypt calls POST /api/decrypt.
	Decrypt(ctx context.Context, text string, shift int) (models.DecryptResponse, error)

	// Analyze calls POST /api/analyze.
	Analyze(ctx context.Context, text string) (models.AnalyzeResponse, error)

	// BruteForce calls POST /api/brute-force.
	BruteForce(ctx context.Context, text string) (models.BruteForceResponse, error)
}
