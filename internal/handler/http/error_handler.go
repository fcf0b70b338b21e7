// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/MKhiriev/donate-hub/models"
)

// NewErrorHandler returns the terminal stage of the pipeline. It answers
// {"detail": ...} with the status from errorStatusTable, adding the field
// list for validation failures. Details of 5xx errors are replaced with a
// generic message unless exposeInternal is set.
func NewErrorHandler(log *logger.Logger, exposeInternal bool) app.ErrorHandler {
	return func(err error, w http.ResponseWriter, r *http.Request) {
		status, target := statusFromError(err)

		resp := models.ErrorResponse{Detail: app.MsgInternalServerError}
		switch {
		case status >= http.StatusInternalServerError && exposeInternal:
			resp.Detail = err.Error()
		case status < http.StatusInternalServerError && target != nil:
			resp.Detail = target.Error()
		}

		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			resp.Errors = validationErr.Fields
		}

		if status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}

		reqLog := logger.FromRequest(r)
		event := reqLog.Warn()
		if status >= http.StatusInternalServerError {
			event = reqLog.Error()
		}
		event.Err(err).
			Int("status", status).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")

		if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
			log.Err(writeErr).Msg("error writing error response")
		}
	}
}
