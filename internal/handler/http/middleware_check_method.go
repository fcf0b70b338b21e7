// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/utils"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the route collection.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. Here both cases forward [app.ErrRouteNotFound], so the
// error handler answers 404 and the existence of the route is not leaked.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.NotFound(routeNotFound)
//	router.MethodNotAllowed(routeNotFound)
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.ForwardError(r.Context(), fmt.Errorf("%w: %s %s", app.ErrRouteNotFound, r.Method, r.URL.Path))
}
