// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body written by the terminal error handler.
type ErrorResponse struct {
	// Detail is a human readable description of the failure.
	Detail string `json:"detail"`

	// Errors lists per-field validation failures, if any.
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// Welcome is the body of GET /.
type Welcome struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
