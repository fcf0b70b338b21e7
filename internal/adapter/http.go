// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/go-resty/resty/v2"
)

const healthPath = "/api/v1/health"

type httpHealthChecker struct {
	client *resty.Client
}

// NewHealthChecker constructs an HTTP implementation of [HealthChecker].
// baseURL may omit the scheme, in which case http is assumed. A zero timeout
// leaves requests bounded only by the caller's context.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHealthChecker(baseURL string, timeout time.Duration) (HealthChecker, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid health check address: %w", err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpHealthChecker{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Check implements [HealthChecker]. The body of a 503 answer is still decoded
// so the caller can report which dependency is down.
func (h *httpHealthChecker) Check(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&status).
		Get(healthPath)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	return status, nil
}
