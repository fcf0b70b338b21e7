// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRouteNotFound_ForwardsError(t *testing.T) {
	ctx, slot := utils.WithErrorSlot(t.Context())
	req := httptest.NewRequest(http.MethodPatch, "/campaigns/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	routeNotFound(rec, req)

	assert.ErrorIs(t, slot.Err(), app.ErrRouteNotFound)
	assert.Contains(t, slot.Err().Error(), "PATCH /campaigns/")
	assert.Zero(t, rec.Body.Len())
}
