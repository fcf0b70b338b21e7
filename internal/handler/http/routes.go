// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

// Init returns the route collection. Paths are relative to the prefix the
// collection is mounted under.
func (h *Handler) Init() chi.Router {
	router := chi.NewRouter()
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Get("/health", h.health)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/tenants", func(r chi.Router) {
		r.Get("/", h.listTenants)
		r.With(h.auth).Post("/", h.createTenant)
		r.Get("/{tenantID}", h.getTenant)
		r.With(h.auth).Put("/{tenantID}", h.updateTenant)
	})

	router.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.listCampaigns)
		r.With(h.auth).Post("/", h.createCampaign)
		r.Get("/{campaignID}", h.getCampaign)
		r.With(h.auth).Put("/{campaignID}", h.updateCampaign)
		r.Get("/{campaignID}/stats", h.getCampaignStats)
	})

	router.Route("/donations", func(r chi.Router) {
		r.Post("/", h.donate)
		r.Get("/campaigns/{campaignID}", h.listCampaignDonations)
	})

	router.Route("/stats", func(r chi.Router) {
		r.With(h.auth).Get("/dashboard", h.dashboard)
	})

	router.Route("/admin", func(r chi.Router) {
		admin := r.With(h.auth, h.requirePlatformAdmin)
		admin.Get("/tenants", h.adminListTenants)
		admin.Get("/tenants/{tenantID}", h.adminGetTenant)
		admin.Put("/tenants/{tenantID}/verify", h.adminVerifyTenant)
	})

	return router
}
