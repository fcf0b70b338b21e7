// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Document(t *testing.T) {
	w := httptest.NewRecorder()
	status := models.HealthStatus{Status: "ok", Version: "1.0.0", Database: "up"}

	n, err := WriteJSON(w, status, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","version":"1.0.0","database":"up"}`, w.Body.String())
}

func TestWriteJSON_Status(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ErrorResponse{Detail: "campaign not found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"campaign not found"}`, w.Body.String())
}

func TestWriteJSON_DecimalAmountsAreStrings(t *testing.T) {
	w := httptest.NewRecorder()
	id := uuid.New()

	_, err := WriteJSON(w, models.RecentDonor{
		ID:           id,
		DonorName:    "Anonymous",
		Amount:       decimal.RequireFromString("12.50"),
		CampaignName: "Wells",
	}, http.StatusOK)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"`+id.String()+`","donor_name":"Anonymous","amount":"12.5","campaign_name":"Wells"}`,
		w.Body.String())
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []models.Donation{}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "[]", w.Body.String())
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
}
