package http

import (
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/utils"
)

// getServerVersion responds with the build metadata of the running server.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
