// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/donate-hub/internal/logger"

// Storages groups every repository built on one [DB].
type Storages struct {
	UserRepository     UserRepository
	TenantRepository   TenantRepository
	CampaignRepository CampaignRepository
	DonationRepository DonationRepository
	StatsRepository    StatsRepository
	HealthChecker      HealthChecker
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		TenantRepository:   NewTenantRepository(db, logger),
		CampaignRepository: NewCampaignRepository(db, logger),
		DonationRepository: NewDonationRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
		HealthChecker:      db,
	}
}
