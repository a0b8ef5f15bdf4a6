package http

import (
	"net/http"

	"github.com/MKhiriev/go-caesar-cipher/internal/app"
)

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, app.MsgEndpointNotFound, http.StatusNotFound)
}
