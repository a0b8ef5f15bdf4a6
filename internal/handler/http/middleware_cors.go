package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows cross-origin calls from the configured origins. With the
// default "*" every origin is allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
