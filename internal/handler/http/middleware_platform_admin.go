// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/utils"
)

// requirePlatformAdmin runs after auth and lets only platform admins through.
// The role is checked against the stored user, not the token claims.
func (h *Handler) requirePlatformAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := currentUserID(r)
		if err != nil {
			utils.ForwardError(ctx, err)
			return
		}

		if err = h.services.AdminService.RequirePlatformAdmin(ctx, userID); err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("user_id", userID.String()).Msg("platform admin check failed")
			utils.ForwardError(ctx, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
