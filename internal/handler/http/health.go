// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/models"
)

const welcomeMessage = "Welcome to the DonateHub API"

// health answers 200 when the database is reachable and 503 otherwise.
// The body carries the status in both cases.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AppInfoService.CheckHealth(r.Context())
	if err != nil {
		utils.WriteJSON(w, status, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// Welcome serves the root document outside of the API prefix.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Welcome{
		Message: welcomeMessage,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
