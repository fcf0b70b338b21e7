// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/models"
)

func (h *Handler) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := tenantFilterFromQuery(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenants, err := h.services.TenantService.ListTenants(ctx, filter)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenants, http.StatusOK)
}

// tenantFilterFromQuery reads the verified, search, page and limit query
// parameters shared by the public and the admin tenant listings.
func tenantFilterFromQuery(r *http.Request) (models.TenantFilter, error) {
	verified, err := boolQuery(r, "verified")
	if err != nil {
		return models.TenantFilter{}, err
	}
	page, err := intQuery(r, "page", 1, 0)
	if err != nil {
		return models.TenantFilter{}, err
	}
	limit, err := intQuery(r, "limit", 1, service.MaxPageLimit)
	if err != nil {
		return models.TenantFilter{}, err
	}

	return models.TenantFilter{
		Verified: verified,
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		Limit:    limit,
	}, nil
}

func (h *Handler) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	var req models.TenantCreate
	if err = h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenant, err := h.services.TenantService.CreateTenant(ctx, userID, req)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenant, http.StatusCreated)
}

func (h *Handler) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, err := uuidParam(r, "tenantID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenant, err := h.services.TenantService.GetTenant(ctx, tenantID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenant, http.StatusOK)
}

func (h *Handler) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}
	tenantID, err := uuidParam(r, "tenantID")
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	var update models.TenantUpdate
	if err = h.decodeAndValidate(r, &update); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	tenant, err := h.services.TenantService.UpdateTenant(ctx, userID, tenantID, update)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, tenant, http.StatusOK)
}
