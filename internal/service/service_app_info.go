// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/donate-hub/internal/config"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	DatabaseUp   = "up"
	DatabaseDown = "down"
)

// ErrDatabaseUnavailable is returned by CheckHealth when the ping fails.
var ErrDatabaseUnavailable = errors.New("database unavailable")

type appInfoService struct {
	appVersion string
	db         store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth pings the database. The status is always filled in; the error
// is ErrDatabaseUnavailable when the ping fails.
func (s *appInfoService) CheckHealth(ctx context.Context) (models.HealthStatus, error) {
	status := models.HealthStatus{Status: StatusOK, Version: s.appVersion, Database: DatabaseUp}

	if s.db == nil {
		return status, nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		status.Status, status.Database = StatusDegraded, DatabaseDown
		return status, ErrDatabaseUnavailable
	}

	return status, nil
}
