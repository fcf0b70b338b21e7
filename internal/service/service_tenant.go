// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 200

	shortDescriptionLen = 100
)

type tenantService struct {
	tenants store.TenantRepository

	logger *logger.Logger
}

func NewTenantService(tenants store.TenantRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenants: tenants,
		logger:  logger,
	}
}

// CreateTenant registers a tenant managed by adminID. A user can manage one
// tenant; a second attempt yields store.ErrTenantAlreadyExists.
func (s *tenantService) CreateTenant(ctx context.Context, adminID uuid.UUID, req models.TenantCreate) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	if adminID == uuid.Nil || strings.TrimSpace(req.Name) == "" {
		log.Error().Str("admin_id", adminID.String()).Msg("invalid tenant data provided")
		return models.Tenant{}, ErrInvalidDataProvided
	}

	tenant, err := s.tenants.CreateTenant(ctx, models.Tenant{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		Location:    req.Location,
		AdminID:     adminID,
	})
	if err != nil {
		log.Err(err).Str("admin_id", adminID.String()).Msg("tenant creation ended with error")
		return models.Tenant{}, fmt.Errorf("tenant creation ended with error: %w", err)
	}

	return tenant, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error) {
	tenant, err := s.tenants.GetTenant(ctx, tenantID)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("error getting tenant: %w", err)
	}
	return tenant, nil
}

// ListTenants returns one page of tenants. A zero limit means
// DefaultPageLimit; limits above MaxPageLimit are rejected.
func (s *tenantService) ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxPageLimit || filter.Page < 0 {
		return nil, ErrInvalidDataProvided
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	filter.Search = strings.TrimSpace(filter.Search)

	tenants, err := s.tenants.ListTenants(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing tenants")
		return nil, fmt.Errorf("error listing tenants: %w", err)
	}

	for i := range tenants {
		tenants[i].ShortDescription = shortDescription(tenants[i].Description)
	}
	return tenants, nil
}

// UpdateTenant applies a partial update. Only the tenant admin may update it.
func (s *tenantService) UpdateTenant(ctx context.Context, userID, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	tenant, err := s.tenants.GetTenant(ctx, tenantID)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("error getting tenant: %w", err)
	}
	if tenant.AdminID != userID {
		log.Warn().Str("tenant_id", tenantID.String()).Str("user_id", userID.String()).Msg("tenant update by non-admin")
		return models.Tenant{}, ErrForbidden
	}
	if update.IsEmpty() {
		return models.Tenant{}, ErrNothingToUpdate
	}

	updated, err := s.tenants.UpdateTenant(ctx, tenantID, update)
	if err != nil {
		log.Err(err).Str("tenant_id", tenantID.String()).Msg("tenant update ended with error")
		return models.Tenant{}, fmt.Errorf("tenant update ended with error: %w", err)
	}
	return updated, nil
}

func shortDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= shortDescriptionLen {
		return description
	}
	return string(runes[:shortDescriptionLen]) + "..."
}
