// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-social-api/internal/app"
	"github.com/MKhiriev/go-social-api/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A known path requested with an unregistered method is answered with
// 404 Not Found instead of chi's 405, so callers cannot probe which methods
// a route supports. A request the router can actually serve is passed back
// to it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
