package http

import (
	"github.com/MKhiriev/go-caesar-cipher/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecoverer, h.withCORS())
	if h.cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.cfg.MaxBodyBytes))
	}
	router.Use(withGZip(h.cfg.MaxBodyBytes))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.home)

	router.Post(service.EncryptPath, h.encrypt)
	router.Post(service.DecryptPath, h.decrypt)
	router.Post(service.AnalyzePath, h.analyze)
	router.Post(service.BruteForcePath, h.bruteForce)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
