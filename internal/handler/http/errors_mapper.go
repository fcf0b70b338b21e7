// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is matched top to bottom with errors.Is; the first hit
// decides the status and its target supplies the response detail.
var errorStatusTable = []errorStatus{
	{app.ErrMalformedJSON, http.StatusBadRequest},
	{app.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{app.ErrRouteNotFound, http.StatusNotFound},

	{validators.ErrValidationFailed, http.StatusUnprocessableEntity},
	{utils.ErrNoJSONBody, http.StatusBadRequest},
	{utils.ErrJSONBodyMismatch, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNothingToUpdate, http.StatusBadRequest},
	{service.ErrInvalidDates, http.StatusBadRequest},
	{service.ErrInvalidAmount, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNoTenantForUser, http.StatusForbidden},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrTenantNotFound, http.StatusNotFound},
	{store.ErrCampaignNotFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrTenantAlreadyExists, http.StatusConflict},

	{service.ErrCampaignNotActive, http.StatusBadRequest},
	{service.ErrCampaignEnded, http.StatusBadRequest},
	{store.ErrIntegrityViolation, http.StatusBadRequest},

	{app.ErrPanic, http.StatusInternalServerError},
	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors are 500 with a nil target.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}
