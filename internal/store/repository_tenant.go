// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var tenantColumns = []string{
	"id", "name", "description", "logo_url", "website", "phone", "email",
	"location", "is_verified", "admin_id", "created_at", "updated_at",
}

// tenantRepository is the SQL implementation of [TenantRepository].
type tenantRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTenantRepository constructs a [TenantRepository] backed by db.
func NewTenantRepository(db *DB, logger *logger.Logger) TenantRepository {
	logger.Debug().Msg("creating tenant repository")
	return &tenantRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTenant inserts the tenant and promotes its admin to
// [models.RoleTenantAdmin] in one transaction. Platform admins keep their role.
//
// Error handling:
//   - the admin already manages a tenant → [ErrTenantAlreadyExists].
//   - the admin user does not exist → [ErrIntegrityViolation].
func (r *tenantRepository) CreateTenant(ctx context.Context, tenant models.Tenant) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	if tenant.ID == uuid.Nil {
		tenant.ID = r.db.ids.Generate()
	}
	ts := now()
	tenant.CreatedAt, tenant.UpdatedAt = ts, ts

	insertQuery, insertArgs, err := r.db.builder.Insert(tenant.TableName()).
		Columns(tenantColumns...).
		Values(tenant.ID, tenant.Name, tenant.Description, tenant.LogoURL, tenant.Website, tenant.Phone,
			tenant.Email, tenant.Location, tenant.IsVerified, tenant.AdminID, tenant.CreatedAt, tenant.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	roleQuery, roleArgs, err := r.db.builder.Update(models.User{}.TableName()).
		Set("role", models.RoleTenantAdmin).
		Where(sq.Eq{"id": tenant.AdminID}).
		Where(sq.NotEq{"role": models.RolePlatformAdmin}).
		ToSql()
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return mapWriteError(err, ErrTenantAlreadyExists)
		}
		if _, err := tx.ExecContext(ctx, roleQuery, roleArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.CreateTenant").Msg("error creating tenant")
		return models.Tenant{}, err
	}

	return tenant, nil
}

// GetTenant returns the tenant with the given ID or [ErrTenantNotFound].
func (r *tenantRepository) GetTenant(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error) {
	return r.getTenant(ctx, sq.Eq{"id": tenantID})
}

// GetTenantByAdmin returns the tenant managed by adminID or [ErrTenantNotFound].
func (r *tenantRepository) GetTenantByAdmin(ctx context.Context, adminID uuid.UUID) (models.Tenant, error) {
	return r.getTenant(ctx, sq.Eq{"admin_id": adminID})
}

func (r *tenantRepository) getTenant(ctx context.Context, where sq.Eq) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(tenantColumns...).
		From(models.Tenant{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tenant, err := scanTenant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tenant{}, ErrTenantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.getTenant").Msg("error scanning tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tenant, nil
}

// ListTenants returns one page of tenants, newest first, each with the
// number of its campaigns and the sum of their current amounts.
func (r *tenantRepository) ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(tenantColumns)+2)
	for _, column := range tenantColumns {
		columns = append(columns, "t."+column)
	}
	columns = append(columns, "COUNT(c.id)", r.db.sumMoney("c.current_amount"))

	builder := r.db.builder.Select(columns...).
		From("tenants t").
		LeftJoin("campaigns c ON c.tenant_id = t.id")
	if filter.Verified != nil {
		builder = builder.Where(sq.Eq{"t.is_verified": *filter.Verified})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		builder = builder.Where("LOWER(t.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	query, args, err := builder.
		GroupBy("t.id").
		OrderBy("t.created_at DESC", "t.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.ListTenants").Msg("error listing tenants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.TenantSummary, 0, filter.Limit)
	for rows.Next() {
		var s models.TenantSummary
		t := &s.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.LogoURL, &t.Website, &t.Phone, &t.Email,
			&t.Location, &t.IsVerified, &t.AdminID, &t.CreatedAt, &t.UpdatedAt,
			&s.TotalCampaigns, &s.TotalRaised); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.TotalRaised = r.db.moneyFromSum(s.TotalRaised)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

// UpdateTenant applies the non-nil fields of update and returns the
// updated tenant, or [ErrTenantNotFound].
func (r *tenantRepository) UpdateTenant(ctx context.Context, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.Update(models.Tenant{}.TableName()).
		Set("updated_at", now()).
		Where(sq.Eq{"id": tenantID})
	for _, field := range []struct {
		column string
		value  *string
	}{
		{"name", update.Name},
		{"description", update.Description},
		{"logo_url", update.LogoURL},
		{"website", update.Website},
		{"phone", update.Phone},
		{"email", update.Email},
		{"location", update.Location},
	} {
		if field.value != nil {
			builder = builder.Set(field.column, *field.value)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.UpdateTenant").Msg("error updating tenant")
		return models.Tenant{}, mapWriteError(err, ErrIntegrityViolation)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Tenant{}, ErrTenantNotFound
	}

	return r.GetTenant(ctx, tenantID)
}

// ListAdminTenants returns one page of tenants, newest first, with campaign
// aggregates and the contact details of each tenant admin.
func (r *tenantRepository) ListAdminTenants(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error) {
	log := logger.FromContext(ctx)

	builder := r.adminTenantSelect()
	if filter.Verified != nil {
		builder = builder.Where(sq.Eq{"t.is_verified": *filter.Verified})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		builder = builder.Where("LOWER(t.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	query, args, err := builder.
		OrderBy("t.created_at DESC", "t.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tenantRepository.ListAdminTenants").Msg("error listing tenants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tenants := make([]models.AdminTenant, 0, filter.Limit)
	for rows.Next() {
		tenant, err := r.scanAdminTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tenants = append(tenants, tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tenants, nil
}

// GetAdminTenant returns the platform admin view of one tenant or
// [ErrTenantNotFound].
func (r *tenantRepository) GetAdminTenant(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error) {
	query, args, err := r.adminTenantSelect().Where(sq.Eq{"t.id": tenantID}).ToSql()
	if err != nil {
		return models.AdminTenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tenant, err := r.scanAdminTenant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AdminTenant{}, ErrTenantNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tenantRepository.GetAdminTenant").Msg("error scanning tenant")
		return models.AdminTenant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tenant, nil
}

// SetTenantVerified sets the verification flag of a tenant and returns the
// updated tenant, or [ErrTenantNotFound].
func (r *tenantRepository) SetTenantVerified(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error) {
	query, args, err := r.db.builder.Update(models.Tenant{}.TableName()).
		Set("is_verified", verified).
		Set("updated_at", now()).
		Where(sq.Eq{"id": tenantID}).
		ToSql()
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tenantRepository.SetTenantVerified").Msg("error verifying tenant")
		return models.Tenant{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Tenant{}, ErrTenantNotFound
	}

	return r.GetTenant(ctx, tenantID)
}

func (r *tenantRepository) adminTenantSelect() sq.SelectBuilder {
	columns := make([]string, 0, len(tenantColumns)+5)
	for _, column := range tenantColumns {
		columns = append(columns, "t."+column)
	}
	columns = append(columns,
		"COUNT(c.id)",
		fmt.Sprintf("COALESCE(SUM(CASE WHEN c.status = '%s' THEN 1 ELSE 0 END), 0)", models.CampaignActive),
		r.db.sumMoney("c.current_amount"),
		"u.full_name",
		"u.email",
	)

	return r.db.builder.Select(columns...).
		From("tenants t").
		Join("users u ON u.id = t.admin_id").
		LeftJoin("campaigns c ON c.tenant_id = t.id").
		GroupBy("t.id", "u.id")
}

func (r *tenantRepository) scanAdminTenant(row rowScanner) (models.AdminTenant, error) {
	var a models.AdminTenant
	t := &a.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LogoURL, &t.Website, &t.Phone, &t.Email,
		&t.Location, &t.IsVerified, &t.AdminID, &t.CreatedAt, &t.UpdatedAt,
		&a.TotalCampaigns, &a.ActiveCampaigns, &a.TotalRaised, &a.ContactPersonName, &a.ContactPersonEmail)
	a.TotalRaised = r.db.moneyFromSum(a.TotalRaised)
	return a, err
}

func scanTenant(row rowScanner) (models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LogoURL, &t.Website, &t.Phone, &t.Email,
		&t.Location, &t.IsVerified, &t.AdminID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
