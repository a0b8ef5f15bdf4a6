// Package http implements the HTTP gateway of the cipher API.
//
// It exposes route wiring, request handlers, and middleware. Requests are
// decoded and mapped to the service layer here; every error leaving the
// package is rendered as a JSON body of the form {"error": "..."}.
// Cross-cutting concerns such as request tracing, access logging, panic
// recovery, CORS and response compression are handled before requests reach
// the handlers.
package http
