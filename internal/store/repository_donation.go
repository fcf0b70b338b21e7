// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var donationColumns = []string{
	"id", "campaign_id", "tenant_id", "amount", "donor_name", "donor_email", "donor_phone",
	"message", "method", "is_anonymous", "donated_at",
}

// donationRepository is the SQL implementation of [DonationRepository].
type donationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDonationRepository constructs a [DonationRepository] backed by db.
func NewDonationRepository(db *DB, logger *logger.Logger) DonationRepository {
	logger.Debug().Msg("creating donation repository")
	return &donationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDonation adds the donation amount to the campaign total and stores
// the donation in one transaction. The total is summed with decimal
// arithmetic so that no backend rounds it through a float. Returns
// [ErrCampaignNotFound] when the campaign row is gone.
func (r *donationRepository) CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error) {
	log := logger.FromContext(ctx)

	if donation.ID == uuid.Nil {
		donation.ID = r.db.ids.Generate()
	}
	ts := now()
	donation.DonatedAt = ts

	currentQuery, currentArgs, err := r.db.forUpdate(r.db.builder.Select("current_amount").
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": donation.CampaignID})).
		ToSql()
	if err != nil {
		return models.Donation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.builder.Insert(donation.TableName()).
		Columns(donationColumns...).
		Values(donation.ID, donation.CampaignID, donation.TenantID, donation.Amount, donation.DonorName,
			donation.DonorEmail, donation.DonorPhone, donation.Message, donation.Method,
			donation.IsAnonymous, donation.DonatedAt).
		ToSql()
	if err != nil {
		return models.Donation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		var current decimal.Decimal
		err := tx.QueryRowContext(ctx, currentQuery, currentArgs...).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCampaignNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		updateQuery, updateArgs, err := r.db.builder.Update(models.Campaign{}.TableName()).
			Set("current_amount", current.Add(donation.Amount)).
			Set("updated_at", ts).
			Where(sq.Eq{"id": donation.CampaignID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return mapWriteError(err, ErrIntegrityViolation)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return mapWriteError(err, ErrIntegrityViolation)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*donationRepository.CreateDonation").Msg("error creating donation")
		return models.Donation{}, err
	}

	return donation, nil
}

// ListCampaignDonations returns the donations of a campaign, newest first.
func (r *donationRepository) ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(donationColumns...).
		From(models.Donation{}.TableName()).
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("donated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*donationRepository.ListCampaignDonations").Msg("error listing donations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	donations := make([]models.Donation, 0)
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.TenantID, &d.Amount, &d.DonorName, &d.DonorEmail,
			&d.DonorPhone, &d.Message, &d.Method, &d.IsAnonymous, &d.DonatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return donations, nil
}
