// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cipher server handlers and middleware.
//
// All Msg* constants are the public "error" strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgNoJSONData is returned when the request body is empty or null.
	MsgNoJSONData = "No JSON data provided"

	// MsgInvalidJSONData is returned when the body is not a JSON object.
	MsgInvalidJSONData = "Invalid JSON data"

	// MsgInvalidInputParameters is returned when a field has the wrong JSON
	// type.
	MsgInvalidInputParameters = "Invalid input parameters"

	// MsgTextRequired is returned when "text" is missing or empty.
	MsgTextRequired = "Text field is required"

	// MsgInvalidShift is returned when "shift" is not an integer in [1,25].
	MsgInvalidShift = "Shift must be an integer between 1 and 25"

	// MsgShiftOutOfRange is returned when the cipher engine itself rejects
	// the shift.
	MsgShiftOutOfRange = "Shift value must be between 1 and 25"

	// MsgRequestBodyTooLarge is returned when the body exceeds the
	// configured limit.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgInvalidGzipData is returned when a gzip-encoded body cannot be
	// inflated.
	MsgInvalidGzipData = "Invalid gzip data"

	MsgEndpointNotFound    = "Endpoint not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "Internal server error"
)
