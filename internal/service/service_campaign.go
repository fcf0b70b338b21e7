// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type campaignService struct {
	tenants   store.TenantRepository
	campaigns store.CampaignRepository
	now       clock

	logger *logger.Logger
}

func NewCampaignService(tenants store.TenantRepository, campaigns store.CampaignRepository, logger *logger.Logger) CampaignService {
	return &campaignService{
		tenants:   tenants,
		campaigns: campaigns,
		now:       utcNow,
		logger:    logger,
	}
}

// CreateCampaign publishes a campaign for the tenant managed by adminID.
//
// Returns ErrNoTenantForUser when adminID manages no tenant, ErrInvalidAmount
// for a non-positive goal and ErrInvalidDates when the end date is not after
// the start date.
func (s *campaignService) CreateCampaign(ctx context.Context, adminID uuid.UUID, req models.CampaignCreate) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	if !validAmount(req.GoalAmount) {
		return models.Campaign{}, ErrInvalidAmount
	}
	if !req.EndDate.After(req.StartDate) {
		return models.Campaign{}, ErrInvalidDates
	}

	tenant, err := tenantOfAdmin(ctx, s.tenants, adminID)
	if err != nil {
		return models.Campaign{}, err
	}

	campaign, err := s.campaigns.CreateCampaign(ctx, models.Campaign{
		TenantID:      tenant.ID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        models.CampaignActive,
		GoalAmount:    req.GoalAmount,
		CurrentAmount: decimal.Zero,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		log.Err(err).Str("tenant_id", tenant.ID.String()).Msg("campaign creation ended with error")
		return models.Campaign{}, fmt.Errorf("campaign creation ended with error: %w", err)
	}

	return campaign, nil
}

// GetCampaign returns the campaign with its progress figures and the number
// of donations it received.
func (s *campaignService) GetCampaign(ctx context.Context, campaignID uuid.UUID) (models.CampaignDetails, error) {
	campaign, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.CampaignDetails{}, fmt.Errorf("error getting campaign: %w", err)
	}

	donors, err := s.campaigns.CountDonors(ctx, campaignID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("campaign_id", campaignID.String()).Msg("error counting donors")
		return models.CampaignDetails{}, fmt.Errorf("error counting donors: %w", err)
	}

	return models.CampaignDetails{
		Campaign:      campaign,
		PercentFunded: percentFunded(campaign.CurrentAmount, campaign.GoalAmount),
		DaysLeft:      daysLeft(campaign.EndDate, s.now()),
		TotalDonors:   donors,
	}, nil
}

// ListCampaigns returns campaigns newest first. ActiveOnly keeps campaigns
// whose date window contains the current time.
func (s *campaignService) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	filter.Now = s.now()

	campaigns, err := s.campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing campaigns")
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	return campaigns, nil
}

// UpdateCampaign applies a partial update to a campaign of the tenant managed
// by adminID. Campaigns of other tenants yield ErrForbidden.
func (s *campaignService) UpdateCampaign(ctx context.Context, adminID, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	tenant, err := tenantOfAdmin(ctx, s.tenants, adminID)
	if err != nil {
		return models.Campaign{}, err
	}

	campaign, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("error getting campaign: %w", err)
	}
	if campaign.TenantID != tenant.ID {
		log.Warn().Str("campaign_id", campaignID.String()).Str("tenant_id", tenant.ID.String()).Msg("campaign update by foreign tenant")
		return models.Campaign{}, ErrForbidden
	}
	if update.IsEmpty() {
		return models.Campaign{}, ErrNothingToUpdate
	}
	if update.GoalAmount != nil && !validAmount(*update.GoalAmount) {
		return models.Campaign{}, ErrInvalidAmount
	}

	start, end := campaign.StartDate, campaign.EndDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	if update.EndDate != nil {
		end = *update.EndDate
	}
	if !end.After(start) {
		return models.Campaign{}, ErrInvalidDates
	}

	updated, err := s.campaigns.UpdateCampaign(ctx, campaignID, update)
	if err != nil {
		log.Err(err).Str("campaign_id", campaignID.String()).Msg("campaign update ended with error")
		return models.Campaign{}, fmt.Errorf("campaign update ended with error: %w", err)
	}
	return updated, nil
}

// GetCampaignStats reports the funding progress of a campaign. IsActive
// reflects the date window only.
func (s *campaignService) GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (models.CampaignStats, error) {
	campaign, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.CampaignStats{}, fmt.Errorf("error getting campaign: %w", err)
	}

	now := s.now()
	return models.CampaignStats{
		PercentFunded:   percentFunded(campaign.CurrentAmount, campaign.GoalAmount),
		AmountRemaining: campaign.GoalAmount.Sub(campaign.CurrentAmount),
		DaysLeft:        daysLeft(campaign.EndDate, now),
		IsActive:        !now.Before(campaign.StartDate) && !now.After(campaign.EndDate),
	}, nil
}

func (s *campaignService) CompleteEndedCampaigns(ctx context.Context) (int64, error) {
	n, err := s.campaigns.CompleteEndedCampaigns(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error completing ended campaigns: %w", err)
	}
	return n, nil
}

// tenantOfAdmin returns the tenant managed by adminID or ErrNoTenantForUser.
func tenantOfAdmin(ctx context.Context, tenants store.TenantRepository, adminID uuid.UUID) (models.Tenant, error) {
	tenant, err := tenants.GetTenantByAdmin(ctx, adminID)
	if errors.Is(err, store.ErrTenantNotFound) {
		return models.Tenant{}, ErrNoTenantForUser
	}
	if err != nil {
		return models.Tenant{}, fmt.Errorf("error getting tenant of admin: %w", err)
	}
	return tenant, nil
}

// validAmount reports whether amount is positive and carries at most two
// decimal places, the precision money columns are stored with.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(2))
}

// percentFunded returns current/goal in percent rounded to two places.
func percentFunded(current, goal decimal.Decimal) float64 {
	if !goal.IsPositive() {
		return 0
	}
	return current.Div(goal).Mul(hundred).Round(2).InexactFloat64()
}

// daysLeft returns the whole days until end, never negative.
func daysLeft(end, now time.Time) int {
	left := end.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left / (24 * time.Hour))
}
