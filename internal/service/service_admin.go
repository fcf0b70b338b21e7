// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

// DefaultAdminPageLimit is the page size of the admin tenant listing.
const DefaultAdminPageLimit = 100

type adminService struct {
	users   store.UserRepository
	tenants store.TenantRepository

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, tenants store.TenantRepository, logger *logger.Logger) AdminService {
	return &adminService{
		users:   users,
		tenants: tenants,
		logger:  logger,
	}
}

// RequirePlatformAdmin reads the role from the database rather than from the
// token, so a revoked role takes effect before the token expires. A token
// of a deleted user yields ErrTokenIsExpiredOrInvalid.
func (s *adminService) RequirePlatformAdmin(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}
	if user.Role != models.RolePlatformAdmin {
		log.Warn().Str("user_id", userID.String()).Str("role", string(user.Role)).Msg("admin route called by non platform admin")
		return ErrForbidden
	}
	return nil
}

// ListTenants returns one page of tenants with their aggregates. A zero
// limit means DefaultAdminPageLimit; limits above MaxPageLimit are rejected.
func (s *adminService) ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultAdminPageLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxPageLimit || filter.Page < 0 {
		return nil, ErrInvalidDataProvided
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	filter.Search = strings.TrimSpace(filter.Search)

	tenants, err := s.tenants.ListAdminTenants(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing admin tenants")
		return nil, fmt.Errorf("error listing tenants: %w", err)
	}
	return tenants, nil
}

func (s *adminService) GetTenant(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error) {
	tenant, err := s.tenants.GetAdminTenant(ctx, tenantID)
	if err != nil {
		return models.AdminTenant{}, fmt.Errorf("error getting tenant: %w", err)
	}
	return tenant, nil
}

// VerifyTenant sets or clears the verified flag shown on the public tenant
// listing.
func (s *adminService) VerifyTenant(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	tenant, err := s.tenants.SetTenantVerified(ctx, tenantID, verified)
	if err != nil {
		log.Err(err).Str("tenant_id", tenantID.String()).Msg("tenant verification ended with error")
		return models.Tenant{}, fmt.Errorf("tenant verification ended with error: %w", err)
	}

	log.Info().Str("tenant_id", tenantID.String()).Bool("is_verified", verified).Msg("tenant verification changed")
	return tenant, nil
}
