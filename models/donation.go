// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the channel the donor used to pay.
type PaymentMethod string

const (
	PaymentMPESA  PaymentMethod = "MPESA"
	PaymentCard   PaymentMethod = "CARD"
	PaymentPayPal PaymentMethod = "PAYPAL"
	PaymentBank   PaymentMethod = "BANK"
)

// AnonymousDonor replaces the donor name of anonymous donations
// in every public response.
const AnonymousDonor = "Anonymous"

// Donation is a single contribution to a campaign.
type Donation struct {
	ID          uuid.UUID       `json:"id"`
	CampaignID  uuid.UUID       `json:"campaign_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Amount      decimal.Decimal `json:"amount"`
	DonorName   string          `json:"donor_name,omitempty"`
	DonorEmail  string          `json:"donor_email,omitempty"`
	DonorPhone  string          `json:"donor_phone,omitempty"`
	Message     string          `json:"message,omitempty"`
	Method      PaymentMethod   `json:"method,omitempty"`
	IsAnonymous bool            `json:"is_anonymous"`
	DonatedAt   time.Time       `json:"donated_at"`
}

// TableName returns the name of the database table
// associated with the Donation model.
func (d Donation) TableName() string {
	return "donations"
}

// Public returns a copy of the donation that is safe to show to anyone:
// contact details are dropped and anonymous donors lose their name.
func (d Donation) Public() Donation {
	d.DonorEmail = ""
	d.DonorPhone = ""
	if d.IsAnonymous || d.DonorName == "" {
		d.DonorName = AnonymousDonor
	}
	return d
}

// DonationCreate is the body of POST /donations/.
type DonationCreate struct {
	CampaignID  uuid.UUID       `json:"campaign_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	DonorName   string          `json:"donor_name" validate:"max=255"`
	DonorEmail  string          `json:"donor_email" validate:"omitempty,email"`
	DonorPhone  string          `json:"donor_phone" validate:"max=32"`
	Message     string          `json:"message" validate:"max=1000"`
	Method      PaymentMethod   `json:"method" validate:"omitempty,oneof=MPESA CARD PAYPAL BANK"`
	IsAnonymous bool            `json:"is_anonymous"`
}
