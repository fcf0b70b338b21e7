// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/donate-hub/internal/logger"
)

// CampaignCompleter is the part of service.CampaignService the worker needs.
type CampaignCompleter interface {
	CompleteEndedCampaigns(ctx context.Context) (int64, error)
}

// CampaignStatusWorker periodically marks active campaigns whose end date
// passed as completed.
type CampaignStatusWorker struct {
	campaigns CampaignCompleter
	interval  time.Duration
	logger    *logger.Logger
}

func NewCampaignStatusWorker(campaigns CampaignCompleter, interval time.Duration, logger *logger.Logger) *CampaignStatusWorker {
	return &CampaignStatusWorker{
		campaigns: campaigns,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps once right away and then every interval until ctx is done.
// A zero interval disables the worker. Sweep failures are logged and the
// worker keeps going.
func (w *CampaignStatusWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.logger.Info().Msg("campaign status worker disabled")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *CampaignStatusWorker) sweep(ctx context.Context) {
	n, err := w.campaigns.CompleteEndedCampaigns(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("worker", "campaign-status").Msg("error completing ended campaigns")
		}
		return
	}
	if n > 0 {
		w.logger.Info().Str("worker", "campaign-status").Int64("completed", n).Msg("ended campaigns completed")
	}
}
