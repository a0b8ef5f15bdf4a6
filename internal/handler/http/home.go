package http

import (
	"net/http"

	"github.com/MKhiriev/go-caesar-cipher/internal/utils"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
