// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the cipher API.
//
// A single invocation runs one operation against the server through the
// adapter package, renders the result, and optionally copies the transformed
// text to the system clipboard.
package client
