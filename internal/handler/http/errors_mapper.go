package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/app"
	"github.com/MKhiriev/go-social-api/internal/service"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrWrongPassword, http.StatusBadRequest, app.MsgWrongPassword},
	{service.ErrEmailAlreadyRegistered, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgUnauthorized},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// statusFromError returns the HTTP status and the client-facing message for
// a service error. Unknown errors become 500 "Internal Server Error".
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
