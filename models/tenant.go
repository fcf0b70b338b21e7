// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant is an organisation that runs donation campaigns on the platform.
type Tenant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Location    string    `json:"location,omitempty"`
	IsVerified  bool      `json:"is_verified"`

	// AdminID is the user that manages the tenant.
	AdminID uuid.UUID `json:"admin_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tenant model.
func (t Tenant) TableName() string {
	return "tenants"
}

// TenantSummary is a tenant row of the public tenant listing,
// enriched with campaign aggregates.
type TenantSummary struct {
	Tenant

	// ShortDescription is the first 100 characters of Description
	// followed by "..." when the description is longer.
	ShortDescription string `json:"short_description,omitempty"`

	TotalCampaigns int64           `json:"total_campaigns"`
	TotalRaised    decimal.Decimal `json:"total_raised"`
}

// TenantCreate is the body of POST /tenants/.
type TenantCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	Website     string `json:"website" validate:"omitempty,url"`
	Phone       string `json:"phone" validate:"max=32"`
	Email       string `json:"email" validate:"omitempty,email"`
	Location    string `json:"location" validate:"max=255"`
}

// TenantUpdate is the body of PUT /tenants/{tenantID}.
// Only non-nil fields are updated.
type TenantUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// IsEmpty reports whether the update carries no fields.
func (u TenantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.LogoURL == nil && u.Website == nil &&
		u.Phone == nil && u.Email == nil && u.Location == nil
}

// TenantFilter holds the query parameters of GET /tenants/.
type TenantFilter struct {
	// Verified filters by verification status when non-nil.
	Verified *bool

	// Search matches tenant names case-insensitively.
	Search string

	// Page is 1-based.
	Page int

	// Limit is the page size.
	Limit int
}

// Offset returns the number of rows to skip for the filter's page.
func (f TenantFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// AdminTenant is the platform admin view of a tenant: the tenant with its
// campaign aggregates and the contact details of its admin.
type AdminTenant struct {
	Tenant

	TotalCampaigns  int64           `json:"total_campaigns"`
	ActiveCampaigns int64           `json:"active_campaigns"`
	TotalRaised     decimal.Decimal `json:"total_raised"`

	ContactPersonName  string `json:"contact_person_name"`
	ContactPersonEmail string `json:"contact_person_email"`
}

// TenantVerification is the body of PUT /admin/tenants/{tenantID}/verify.
type TenantVerification struct {
	IsVerified *bool `json:"is_verified" validate:"required"`
}
