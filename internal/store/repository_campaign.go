// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var campaignColumns = []string{
	"id", "tenant_id", "title", "description", "status", "goal_amount", "current_amount",
	"start_date", "end_date", "image_url", "created_at", "updated_at",
}

// campaignRepository is the SQL implementation of [CampaignRepository].
type campaignRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCampaignRepository constructs a [CampaignRepository] backed by db.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCampaign inserts a campaign. A missing tenant yields
// [ErrIntegrityViolation].
func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	if campaign.ID == uuid.Nil {
		campaign.ID = r.db.ids.Generate()
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignActive
	}
	ts := now()
	campaign.CreatedAt, campaign.UpdatedAt = ts, ts
	campaign.StartDate = campaign.StartDate.UTC().Truncate(time.Second)
	campaign.EndDate = campaign.EndDate.UTC().Truncate(time.Second)

	query, args, err := r.db.builder.Insert(campaign.TableName()).
		Columns(campaignColumns...).
		Values(campaign.ID, campaign.TenantID, campaign.Title, campaign.Description, campaign.Status,
			campaign.GoalAmount, campaign.CurrentAmount, campaign.StartDate, campaign.EndDate,
			campaign.ImageURL, campaign.CreatedAt, campaign.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*campaignRepository.CreateCampaign").Msg("error inserting campaign")
		return models.Campaign{}, mapWriteError(err, ErrIntegrityViolation)
	}

	return campaign, nil
}

// GetCampaign returns the campaign with the given ID or [ErrCampaignNotFound].
func (r *campaignRepository) GetCampaign(ctx context.Context, campaignID uuid.UUID) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(campaignColumns...).
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": campaignID}).
		ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Campaign{}, ErrCampaignNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.GetCampaign").Msg("error scanning campaign")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return campaign, nil
}

// ListCampaigns returns campaigns matching filter, newest first.
func (r *campaignRepository) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.Select(campaignColumns...).
		From(models.Campaign{}.TableName())
	if filter.TenantID != nil {
		builder = builder.Where(sq.Eq{"tenant_id": *filter.TenantID})
	}
	if filter.ActiveOnly {
		ts := filter.Now.UTC().Truncate(time.Second)
		builder = builder.Where(sq.And{
			sq.LtOrEq{"start_date": ts},
			sq.GtOrEq{"end_date": ts},
		})
	}

	query, args, err := builder.OrderBy("created_at DESC", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.ListCampaigns").Msg("error listing campaigns")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return campaigns, nil
}

// UpdateCampaign applies the non-nil fields of update and returns the
// updated campaign, or [ErrCampaignNotFound].
func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.Update(models.Campaign{}.TableName()).
		Set("updated_at", now()).
		Where(sq.Eq{"id": campaignID})
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.GoalAmount != nil {
		builder = builder.Set("goal_amount", *update.GoalAmount)
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", update.StartDate.UTC().Truncate(time.Second))
	}
	if update.EndDate != nil {
		builder = builder.Set("end_date", update.EndDate.UTC().Truncate(time.Second))
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.UpdateCampaign").Msg("error updating campaign")
		return models.Campaign{}, mapWriteError(err, ErrIntegrityViolation)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Campaign{}, ErrCampaignNotFound
	}

	return r.GetCampaign(ctx, campaignID)
}

// CountDonors returns the number of distinct donor emails among the
// donations made to the campaign. Donations without an email count as one
// donor.
func (r *campaignRepository) CountDonors(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	query, args, err := r.db.builder.Select("COUNT(DISTINCT donor_email)").
		From(models.Donation{}.TableName()).
		Where(sq.Eq{"campaign_id": campaignID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// CompleteEndedCampaigns marks active campaigns whose end date is before
// ts as completed and returns how many were changed.
func (r *campaignRepository) CompleteEndedCampaigns(ctx context.Context, ts time.Time) (int64, error) {
	ts = ts.UTC().Truncate(time.Second)

	query, args, err := r.db.builder.Update(models.Campaign{}.TableName()).
		Set("status", models.CampaignCompleted).
		Set("updated_at", ts).
		Where(sq.Eq{"status": models.CampaignActive}).
		Where(sq.Lt{"end_date": ts}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

func scanCampaign(row rowScanner) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.TenantID, &c.Title, &c.Description, &c.Status, &c.GoalAmount, &c.CurrentAmount,
		&c.StartDate, &c.EndDate, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
