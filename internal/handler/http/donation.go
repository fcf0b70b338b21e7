// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/models"
)

func (h *Handler) donate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.DonationCreate
	if err := h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	donation, err := h.services.DonationService.Donate(ctx, req)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, donation, http.StatusCreated)
}

func (h *Handler) listCampaignDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignID, err := uuidParam(r, "campaignID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	donations, err := h.services.DonationService.ListCampaignDonations(ctx, campaignID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, donations, http.StatusOK)
}
