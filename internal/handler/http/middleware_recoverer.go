package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-caesar-cipher/internal/app"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
)

// withRecoverer turns a panic in a downstream handler into a 500 response
// with a generic JSON body. The panic value and stack are only logged.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			writeErrorMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
