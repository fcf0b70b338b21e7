// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/models"
)

func (h *Handler) adminListTenants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := tenantFilterFromQuery(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenants, err := h.services.AdminService.ListTenants(ctx, filter)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenants, http.StatusOK)
}

func (h *Handler) adminGetTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, err := uuidParam(r, "tenantID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenant, err := h.services.AdminService.GetTenant(ctx, tenantID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenant, http.StatusOK)
}

func (h *Handler) adminVerifyTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, err := uuidParam(r, "tenantID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	var req models.TenantVerification
	if err = h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenant, err := h.services.AdminService.VerifyTenant(ctx, tenantID, *req.IsVerified)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenant, http.StatusOK)
}
