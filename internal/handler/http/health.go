package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if !status.Serving() {
		code = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, status, code)
}
