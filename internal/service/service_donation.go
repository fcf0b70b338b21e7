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

type donationService struct {
	campaigns store.CampaignRepository
	donations store.DonationRepository
	now       clock

	logger *logger.Logger
}

func NewDonationService(campaigns store.CampaignRepository, donations store.DonationRepository, logger *logger.Logger) DonationService {
	return &donationService{
		campaigns: campaigns,
		donations: donations,
		now:       utcNow,
		logger:    logger,
	}
}

// Donate records a completed donation and adds it to the campaign total.
//
// Error handling:
//   - non-positive amount or more than two decimal places → ErrInvalidAmount.
//   - unknown campaign → store.ErrCampaignNotFound (wrapped).
//   - campaign not active or not started yet → ErrCampaignNotActive.
//   - campaign end date passed → ErrCampaignEnded.
func (s *donationService) Donate(ctx context.Context, req models.DonationCreate) (models.Donation, error) {
	log := logger.FromContext(ctx)

	if !validAmount(req.Amount) {
		return models.Donation{}, ErrInvalidAmount
	}

	campaign, err := s.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return models.Donation{}, fmt.Errorf("error getting campaign: %w", err)
	}

	now := s.now()
	switch {
	case campaign.Status != models.CampaignActive, now.Before(campaign.StartDate):
		return models.Donation{}, ErrCampaignNotActive
	case now.After(campaign.EndDate):
		return models.Donation{}, ErrCampaignEnded
	}

	donation, err := s.donations.CreateDonation(ctx, models.Donation{
		CampaignID:  campaign.ID,
		TenantID:    campaign.TenantID,
		Amount:      req.Amount,
		DonorName:   strings.TrimSpace(req.DonorName),
		DonorEmail:  normalizeEmail(req.DonorEmail),
		DonorPhone:  strings.TrimSpace(req.DonorPhone),
		Message:     req.Message,
		Method:      req.Method,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		log.Err(err).Str("campaign_id", campaign.ID.String()).Msg("donation creation ended with error")
		return models.Donation{}, fmt.Errorf("donation creation ended with error: %w", err)
	}

	log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("donation_id", donation.ID.String()).
		Str("amount", donation.Amount.String()).
		Msg("donation recorded")
	return donation, nil
}

// ListCampaignDonations returns the public view of a campaign's donations,
// newest first.
func (s *donationService) ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error) {
	if _, err := s.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, fmt.Errorf("error getting campaign: %w", err)
	}

	donations, err := s.donations.ListCampaignDonations(ctx, campaignID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("campaign_id", campaignID.String()).Msg("error listing donations")
		return nil, fmt.Errorf("error listing donations: %w", err)
	}

	public := make([]models.Donation, 0, len(donations))
	for _, d := range donations {
		public = append(public, d.Public())
	}
	return public, nil
}
