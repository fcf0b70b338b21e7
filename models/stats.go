// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentDonor is one entry of the dashboard's recent donors list.
type RecentDonor struct {
	ID           uuid.UUID       `json:"id"`
	DonorName    string          `json:"donor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Method       PaymentMethod   `json:"payment_method,omitempty"`
	CampaignName string          `json:"campaign_name"`
}

// TenantTotals are the raw aggregates a tenant dashboard is built from.
type TenantTotals struct {
	TotalCampaigns int64
	TotalDonations int64
	TotalDonated   decimal.Decimal
	TotalCurrent   decimal.Decimal
	TotalGoal      decimal.Decimal
}

// TopCampaign is one entry of the dashboard's best performing active
// campaigns, ranked by the funded share of their goal.
type TopCampaign struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	GoalAmount  decimal.Decimal `json:"-"`
	SuccessRate float64         `json:"success_rate"`
}

// DashboardStats is the response of GET /stats/dashboard.
type DashboardStats struct {
	TenantID       uuid.UUID       `json:"tenant_id"`
	TotalCampaigns int64           `json:"total_campaigns"`
	TotalDonors    int64           `json:"total_donors"`
	TotalRaised    decimal.Decimal `json:"total_raised"`
	TotalGoal      decimal.Decimal `json:"total_goal"`
	SuccessRate    float64         `json:"success_rate"`
	RecentDonors   []RecentDonor   `json:"recent_donors"`
	TopCampaigns   []TopCampaign   `json:"top_performing_campaigns"`
}
