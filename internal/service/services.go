// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the API. Services sit between
// the HTTP handlers and the repositories of package store and return the
// sentinel errors of both packages.
package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/donate-hub/internal/config"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
)

type Services struct {
	AuthService     AuthService
	TenantService   TenantService
	AdminService    AdminService
	CampaignService CampaignService
	DonationService DonationService
	StatsService    StatsService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of storages. Wrappers decorate
// the donation service in the given order.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, wrappers ...DonationServiceWrapper) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var donations DonationService = NewDonationService(storages.CampaignRepository, storages.DonationRepository, logger)
	for _, w := range wrappers {
		donations = w.Wrap(donations)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		TenantService:   NewTenantService(storages.TenantRepository, logger),
		AdminService:    NewAdminService(storages.UserRepository, storages.TenantRepository, logger),
		CampaignService: NewCampaignService(storages.TenantRepository, storages.CampaignRepository, logger),
		DonationService: donations,
		StatsService:    NewStatsService(storages.TenantRepository, storages.StatsRepository, logger),
		AppInfoService:  appInfo,
	}, nil
}

// clock is swapped in tests.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
