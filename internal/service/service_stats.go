// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

const (
	dashboardRecentDonors = 5
	dashboardTopCampaigns = 5
)

type statsService struct {
	tenants store.TenantRepository
	stats   store.StatsRepository

	logger *logger.Logger
}

func NewStatsService(tenants store.TenantRepository, stats store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		tenants: tenants,
		stats:   stats,
		logger:  logger,
	}
}

// GetDashboard builds the dashboard of the tenant managed by adminID.
func (s *statsService) GetDashboard(ctx context.Context, adminID uuid.UUID) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	tenant, err := tenantOfAdmin(ctx, s.tenants, adminID)
	if err != nil {
		return models.DashboardStats{}, err
	}

	totals, err := s.stats.TenantTotals(ctx, tenant.ID)
	if err != nil {
		log.Err(err).Str("tenant_id", tenant.ID.String()).Msg("error computing tenant totals")
		return models.DashboardStats{}, fmt.Errorf("error computing tenant totals: %w", err)
	}

	recent, err := s.stats.RecentDonors(ctx, tenant.ID, dashboardRecentDonors)
	if err != nil {
		log.Err(err).Str("tenant_id", tenant.ID.String()).Msg("error listing recent donors")
		return models.DashboardStats{}, fmt.Errorf("error listing recent donors: %w", err)
	}

	top, err := s.stats.TopCampaigns(ctx, tenant.ID, dashboardTopCampaigns)
	if err != nil {
		log.Err(err).Str("tenant_id", tenant.ID.String()).Msg("error listing top campaigns")
		return models.DashboardStats{}, fmt.Errorf("error listing top campaigns: %w", err)
	}
	for i := range top {
		top[i].SuccessRate = percentFunded(top[i].Amount, top[i].GoalAmount)
	}

	if recent == nil {
		recent = []models.RecentDonor{}
	}
	if top == nil {
		top = []models.TopCampaign{}
	}

	return models.DashboardStats{
		TenantID:       tenant.ID,
		TotalCampaigns: totals.TotalCampaigns,
		TotalDonors:    totals.TotalDonations,
		TotalRaised:    totals.TotalDonated,
		TotalGoal:      totals.TotalGoal,
		SuccessRate:    percentFunded(totals.TotalCurrent, totals.TotalGoal),
		RecentDonors:   recent,
		TopCampaigns:   top,
	}, nil
}
