// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly, err := boolQuery(r, "active_only")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	filter := models.CampaignFilter{ActiveOnly: activeOnly != nil && *activeOnly}
	if raw := r.URL.Query().Get("tenant_id"); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			utils.ForwardError(ctx, validators.NewFieldError("tenant_id", "uuid"))
			return
		}
		filter.TenantID = &tenantID
	}

	campaigns, err := h.services.CampaignService.ListCampaigns(ctx, filter)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	var req models.CampaignCreate
	if err = h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	campaign, err := h.services.CampaignService.CreateCampaign(ctx, userID, req)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, campaign, http.StatusCreated)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignID, err := uuidParam(r, "campaignID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	details, err := h.services.CampaignService.GetCampaign(ctx, campaignID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}
	campaignID, err := uuidParam(r, "campaignID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	var update models.CampaignUpdate
	if err = h.decodeAndValidate(r, &update); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	campaign, err := h.services.CampaignService.UpdateCampaign(ctx, userID, campaignID, update)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) getCampaignStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignID, err := uuidParam(r, "campaignID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	stats, err := h.services.CampaignService.GetCampaignStats(ctx, campaignID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
