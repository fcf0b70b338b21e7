// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/models"
)

const tokenType = "bearer"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	log.Info().Str("id", registeredUser.ID.String()).Msg("user registered")
	h.writeAuthResponse(ctx, w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")
	h.writeAuthResponse(ctx, w, foundUser, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// writeAuthResponse issues a token for user and writes it both in the body
// and in the Authorization header.
func (h *Handler) writeAuthResponse(ctx context.Context, w http.ResponseWriter, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		utils.ForwardError(ctx, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		AccessToken: token.SignedString,
		TokenType:   tokenType,
		User:        user,
	}, status)
}
