// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	stats, err := h.services.StatsService.GetDashboard(ctx, userID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
