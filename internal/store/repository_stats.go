// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// statsRepository is the SQL implementation of [StatsRepository].
type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatsRepository constructs a [StatsRepository] backed by db.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// TenantTotals aggregates campaign and donation figures of one tenant.
func (r *statsRepository) TenantTotals(ctx context.Context, tenantID uuid.UUID) (models.TenantTotals, error) {
	var totals models.TenantTotals

	campaignQuery, campaignArgs, err := r.db.builder.
		Select("COUNT(*)", r.db.sumMoney("current_amount"), r.db.sumMoney("goal_amount")).
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return totals, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, campaignQuery, campaignArgs...).
		Scan(&totals.TotalCampaigns, &totals.TotalCurrent, &totals.TotalGoal)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statsRepository.TenantTotals").Msg("error aggregating campaigns")
		return totals, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	donationQuery, donationArgs, err := r.db.builder.
		Select("COUNT(*)", r.db.sumMoney("amount")).
		From(models.Donation{}.TableName()).
		Where(sq.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return totals, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, donationQuery, donationArgs...).
		Scan(&totals.TotalDonations, &totals.TotalDonated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statsRepository.TenantTotals").Msg("error aggregating donations")
		return totals, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	totals.TotalCurrent = r.db.moneyFromSum(totals.TotalCurrent)
	totals.TotalGoal = r.db.moneyFromSum(totals.TotalGoal)
	totals.TotalDonated = r.db.moneyFromSum(totals.TotalDonated)

	return totals, nil
}

// RecentDonors returns the latest donations of a tenant with the title of
// the campaign they went to. Anonymous donors are renamed here.
func (r *statsRepository) RecentDonors(ctx context.Context, tenantID uuid.UUID, limit uint64) ([]models.RecentDonor, error) {
	query, args, err := r.db.builder.
		Select("d.id", "d.donor_name", "d.is_anonymous", "d.amount", "d.method", "c.title").
		From("donations d").
		Join("campaigns c ON c.id = d.campaign_id").
		Where(sq.Eq{"d.tenant_id": tenantID}).
		OrderBy("d.donated_at DESC", "d.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	donors := make([]models.RecentDonor, 0, limit)
	for rows.Next() {
		var (
			donor       models.RecentDonor
			isAnonymous bool
		)
		if err := rows.Scan(&donor.ID, &donor.DonorName, &isAnonymous, &donor.Amount, &donor.Method, &donor.CampaignName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if isAnonymous || donor.DonorName == "" {
			donor.DonorName = models.AnonymousDonor
		}
		donors = append(donors, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return donors, nil
}

// TopCampaigns returns the active campaigns of a tenant with the highest
// funded share of their goal.
func (r *statsRepository) TopCampaigns(ctx context.Context, tenantID uuid.UUID, limit uint64) ([]models.TopCampaign, error) {
	query, args, err := r.db.builder.
		Select("id", "title", "current_amount", "goal_amount").
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"tenant_id": tenantID, "status": models.CampaignActive}).
		Where("CAST(goal_amount AS REAL) > 0").
		OrderBy("CAST(current_amount AS REAL) / CAST(goal_amount AS REAL) DESC", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.TopCampaign, 0, limit)
	for rows.Next() {
		var c models.TopCampaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Amount, &c.GoalAmount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return campaigns, nil
}
