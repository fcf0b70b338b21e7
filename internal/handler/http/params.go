// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// uuidParam parses the path parameter name. Malformed IDs are reported as a
// validation error on the field of the same name.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, validators.NewFieldError(name, "uuid")
	}
	return id, nil
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, validators.NewFieldError(name, "boolean")
	}
	return &v, nil
}

// intQuery parses an optional integer query parameter within [lo, hi].
// A zero hi means no upper bound. Absent parameters yield 0.
func intQuery(r *http.Request, name string, lo, hi int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validators.NewFieldError(name, "integer")
	}
	if v < lo {
		return 0, validators.NewFieldError(name, "min="+strconv.Itoa(lo))
	}
	if hi > 0 && v > hi {
		return 0, validators.NewFieldError(name, "max="+strconv.Itoa(hi))
	}
	return v, nil
}
