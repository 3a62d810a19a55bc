package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
)

// version writes the running server version as plain text.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	v := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, v); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
