// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_PublicEndpoints(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())
	id := uuid.NewString()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/tenants/", "", http.StatusOK},
		{http.MethodGet, "/api/v1/tenants/" + id, "", http.StatusOK},
		{http.MethodGet, "/api/v1/campaigns/", "", http.StatusOK},
		{http.MethodGet, "/api/v1/campaigns/" + id, "", http.StatusOK},
		{http.MethodGet, "/api/v1/campaigns/" + id + "/stats", "", http.StatusOK},
		{http.MethodGet, "/api/v1/donations/campaigns/" + id, "", http.StatusOK},
		{http.MethodPost, "/api/v1/donations/", `{"campaign_id":"` + id + `","amount":"10.50"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(handler, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRoutes_ProtectedEndpointsRequireToken(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())
	id := uuid.NewString()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/tenants/"},
		{http.MethodPut, "/api/v1/tenants/" + id},
		{http.MethodPost, "/api/v1/campaigns/"},
		{http.MethodPut, "/api/v1/campaigns/" + id},
		{http.MethodGet, "/api/v1/stats/dashboard"},
		{http.MethodGet, "/api/v1/admin/tenants"},
		{http.MethodGet, "/api/v1/admin/tenants/" + id},
		{http.MethodPut, "/api/v1/admin/tenants/" + id + "/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(handler, tt.method, tt.path, `{}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"detail":"not authenticated"}`, rec.Body.String())
		})
	}
}

func TestRoutes_UnknownPathIsNotFound(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())

	rec := do(handler, http.MethodGet, "/api/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"not found"}`, rec.Body.String())
}

func TestRoutes_UnregisteredMethodIsNotFound(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())

	for _, path := range []string{"/api/v1/health", "/api/v1/tenants/", "/api/v1/stats/dashboard"} {
		t.Run(path, func(t *testing.T) {
			rec := do(handler, http.MethodDelete, path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_Welcome(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())

	rec := do(handler, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the DonateHub API","version":"test-version"}`, rec.Body.String())
}

func TestRoutes_MalformedPathID(t *testing.T) {
	handler := newTestPipeline(t, newMockServices())

	rec := do(handler, http.MethodGet, "/api/v1/campaigns/not-a-uuid", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t,
		`{"detail":"validation failed","errors":[{"field":"campaignID","rule":"uuid"}]}`,
		rec.Body.String())
}
