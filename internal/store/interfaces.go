// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// TenantRepository persists tenants. CreateTenant also promotes the admin
// user to [models.RoleTenantAdmin].
type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error)
	GetTenantByAdmin(ctx context.Context, adminID uuid.UUID) (models.Tenant, error)
	ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error)
	UpdateTenant(ctx context.Context, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error)

	ListAdminTenants(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error)
	GetAdminTenant(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error)
	SetTenantVerified(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (models.Campaign, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error)
	CountDonors(ctx context.Context, campaignID uuid.UUID) (int64, error)
	CompleteEndedCampaigns(ctx context.Context, now time.Time) (int64, error)
}

// DonationRepository persists donations. CreateDonation adds the amount to
// the campaign total in the same transaction.
type DonationRepository interface {
	CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error)
	ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error)
}

// StatsRepository computes tenant dashboard aggregates.
type StatsRepository interface {
	TenantTotals(ctx context.Context, tenantID uuid.UUID) (models.TenantTotals, error)
	RecentDonors(ctx context.Context, tenantID uuid.UUID, limit uint64) ([]models.RecentDonor, error)
	TopCampaigns(ctx context.Context, tenantID uuid.UUID, limit uint64) ([]models.TopCampaign, error)
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
