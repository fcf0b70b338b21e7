// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type TenantService interface {
	CreateTenant(ctx context.Context, adminID uuid.UUID, req models.TenantCreate) (models.Tenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error)
	ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error)
	UpdateTenant(ctx context.Context, userID, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error)
}

// AdminService backs the platform admin routes.
type AdminService interface {
	// RequirePlatformAdmin returns ErrForbidden unless userID currently holds
	// the platform_admin role.
	RequirePlatformAdmin(ctx context.Context, userID uuid.UUID) error
	ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error)
	VerifyTenant(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error)
}

type CampaignService interface {
	CreateCampaign(ctx context.Context, adminID uuid.UUID, req models.CampaignCreate) (models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (models.CampaignDetails, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, adminID, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error)
	GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (models.CampaignStats, error)

	// CompleteEndedCampaigns marks active campaigns whose end date passed as
	// completed and returns how many were changed.
	CompleteEndedCampaigns(ctx context.Context) (int64, error)
}

type DonationService interface {
	Donate(ctx context.Context, req models.DonationCreate) (models.Donation, error)
	ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error)
}

type StatsService interface {
	GetDashboard(ctx context.Context, adminID uuid.UUID) (models.DashboardStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) (models.HealthStatus, error)
}

// DonationServiceWrapper defines middleware composition for DonationService.
// Implementations wrap an existing DonationService to add behavior such as
// metrics or logging.
type DonationServiceWrapper interface {
	Wrap(DonationService) DonationService
}
