// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients that talk to a running DonateHub API.
//
// [HealthChecker] probes GET /api/v1/health and is used by the container
// healthcheck binary. Non-2xx answers are mapped to the sentinel errors in
// errors.go by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/donate-hub/models"
)

// HealthChecker reports the health of a running API instance.
type HealthChecker interface {
	// Check returns the health document of the instance. A reachable instance
	// that reports itself degraded yields the document and [ErrUnhealthy].
	Check(ctx context.Context) (models.HealthStatus, error)
}
