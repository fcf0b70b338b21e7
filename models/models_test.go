// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-17", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-17", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-10-17")
}

func TestCampaign_IsActiveAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{Status: CampaignActive, StartDate: start, EndDate: end}

	assert.True(t, c.IsActiveAt(start))
	assert.True(t, c.IsActiveAt(end))
	assert.False(t, c.IsActiveAt(start.Add(-time.Second)))
	assert.False(t, c.IsActiveAt(end.Add(time.Second)))

	c.Status = CampaignCancelled
	assert.False(t, c.IsActiveAt(start.Add(time.Hour)))
}

func TestDonation_Public(t *testing.T) {
	d := Donation{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(10),
		DonorName:   "Jane",
		DonorEmail:  "jane@example.com",
		DonorPhone:  "+254700000000",
		IsAnonymous: true,
	}

	public := d.Public()
	assert.Equal(t, AnonymousDonor, public.DonorName)
	assert.Empty(t, public.DonorEmail)
	assert.Empty(t, public.DonorPhone)
	// the original value is untouched
	assert.Equal(t, "Jane", d.DonorName)

	d.IsAnonymous = false
	assert.Equal(t, "Jane", d.Public().DonorName)

	d.DonorName = ""
	assert.Equal(t, AnonymousDonor, d.Public().DonorName)
}

func TestTenantFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, TenantFilter{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, TenantFilter{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, TenantFilter{Page: 3, Limit: 10}.Offset())
}

func TestUpdates_IsEmpty(t *testing.T) {
	assert.True(t, TenantUpdate{}.IsEmpty())
	name := "x"
	assert.False(t, TenantUpdate{Name: &name}.IsEmpty())

	assert.True(t, CampaignUpdate{}.IsEmpty())
	assert.False(t, CampaignUpdate{Title: &name}.IsEmpty())
}

func TestClaims_GetUserID(t *testing.T) {
	id := uuid.New()
	c := Claims{}
	c.Subject = id.String()

	got, err := c.GetUserID()
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	c.Subject = "not-a-uuid"
	_, err = c.GetUserID()
	assert.Error(t, err)
}
