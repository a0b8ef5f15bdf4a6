// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrNoJSONData is returned when the request body is empty or the JSON
	// literal null.
	ErrNoJSONData = errors.New("no JSON data provided")

	// ErrInvalidJSON is returned when the body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON data")

	// ErrInvalidInputParameters is returned when a known field holds a value
	// of the wrong JSON type, e.g. a number in "text".
	ErrInvalidInputParameters = errors.New("invalid input parameters")

	// ErrRequestBodyTooLarge is returned when the body exceeds the configured
	// size limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrInvalidGzipData is returned when a gzip-encoded body is truncated
	// or corrupt.
	ErrInvalidGzipData = errors.New("invalid gzip data")
)
