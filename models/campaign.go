// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	// CampaignActive campaigns accept donations until their end date.
	CampaignActive CampaignStatus = "active"

	// CampaignCompleted campaigns reached their end date.
	CampaignCompleted CampaignStatus = "completed"

	// CampaignCancelled campaigns were stopped by the tenant.
	CampaignCancelled CampaignStatus = "cancelled"
)

// Campaign is a fundraising goal published by a tenant.
type Campaign struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        CampaignStatus  `json:"status"`
	GoalAmount    decimal.Decimal `json:"goal_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Campaign model.
func (c Campaign) TableName() string {
	return "campaigns"
}

// IsActiveAt reports whether the campaign accepts donations at t.
func (c Campaign) IsActiveAt(t time.Time) bool {
	return c.Status == CampaignActive && !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// CampaignDetails is the public representation of a campaign
// with derived progress figures.
type CampaignDetails struct {
	Campaign

	PercentFunded float64 `json:"percent_funded"`
	DaysLeft      int     `json:"days_left"`
	TotalDonors   int64   `json:"total_donors"`
}

// CampaignStats is the response of GET /campaigns/{campaignID}/stats.
type CampaignStats struct {
	PercentFunded   float64         `json:"percent_funded"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
	DaysLeft        int             `json:"days_left"`
	IsActive        bool            `json:"is_active"`
}

// CampaignCreate is the body of POST /campaigns/.
type CampaignCreate struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description string          `json:"description" validate:"required,max=10000"`
	GoalAmount  decimal.Decimal `json:"goal_amount" validate:"gt=0"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required,gtfield=StartDate"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// CampaignUpdate is the body of PUT /campaigns/{campaignID}.
// Only non-nil fields are updated.
type CampaignUpdate struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=10000"`
	Status      *CampaignStatus  `json:"status,omitempty" validate:"omitempty,oneof=active completed cancelled"`
	GoalAmount  *decimal.Decimal `json:"goal_amount,omitempty" validate:"omitempty,gt=0"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

// IsEmpty reports whether the update carries no fields.
func (u CampaignUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.GoalAmount == nil &&
		u.StartDate == nil && u.EndDate == nil && u.ImageURL == nil
}

// CampaignFilter holds the query parameters of GET /campaigns/.
type CampaignFilter struct {
	// ActiveOnly keeps campaigns whose date window contains Now.
	ActiveOnly bool

	// TenantID keeps campaigns of a single tenant when non-nil.
	TenantID *uuid.UUID

	// Now is the reference time for ActiveOnly.
	Now time.Time
}
