// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/internal/utils"
	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/google/uuid"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}

// decodeAndValidate decodes the body parsed by the JSON stage into dst and
// checks its `validate` tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := utils.DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}

// currentUserID returns the user authenticated by the auth middleware.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrEmptyAuthorizationHeader
	}
	return userID, nil
}
