// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-caesar-cipher/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi calls it when the request path matches a registered route but the
// HTTP method is not handled. It responds with HTTP 405 and the JSON body
// {"error": "Method not allowed"}, and lists the methods registered for the
// route in the Allow header.
//
// The lookup iterates over all routes registered on router and compares each
// route's pattern against the raw request path ([http.Request.URL.Path]).
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != requestedURL {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			break
		}

		if len(allowed) > 0 {
			slices.Sort(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeErrorMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
