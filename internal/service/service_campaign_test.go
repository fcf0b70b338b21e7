// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/mock"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestCampaignService(t *testing.T) (*campaignService, *mock.MockTenantRepository, *mock.MockCampaignRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tenants := mock.NewMockTenantRepository(ctrl)
	campaigns := mock.NewMockCampaignRepository(ctrl)
	svc := NewCampaignService(tenants, campaigns, logger.Nop()).(*campaignService)
	svc.now = func() time.Time { return testNow }

	return svc, tenants, campaigns
}

func validCampaignCreate() models.CampaignCreate {
	return models.CampaignCreate{
		Title:       "Clean water",
		Description: "Wells for the village",
		GoalAmount:  decimal.NewFromInt(1000),
		StartDate:   testNow.AddDate(0, 0, -1),
		EndDate:     testNow.AddDate(0, 1, 0),
	}
}

func TestCampaignService_CreateCampaign(t *testing.T) {
	svc, tenants, campaigns := newTestCampaignService(t)
	adminID, tenantID := uuid.New(), uuid.New()

	tenants.EXPECT().GetTenantByAdmin(gomock.Any(), adminID).Return(models.Tenant{ID: tenantID, AdminID: adminID}, nil)
	campaigns.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Campaign) (models.Campaign, error) {
			assert.Equal(t, tenantID, c.TenantID)
			assert.Equal(t, models.CampaignActive, c.Status)
			assert.True(t, c.CurrentAmount.IsZero())
			c.ID = uuid.New()
			return c, nil
		})

	c, err := svc.CreateCampaign(context.Background(), adminID, validCampaignCreate())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCampaignService_CreateCampaign_Rejections(t *testing.T) {
	t.Run("no tenant", func(t *testing.T) {
		svc, tenants, _ := newTestCampaignService(t)
		tenants.EXPECT().GetTenantByAdmin(gomock.Any(), gomock.Any()).Return(models.Tenant{}, store.ErrTenantNotFound)

		_, err := svc.CreateCampaign(context.Background(), uuid.New(), validCampaignCreate())

		assert.ErrorIs(t, err, ErrNoTenantForUser)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, _ := newTestCampaignService(t)
		req := validCampaignCreate()
		req.EndDate = req.StartDate

		_, err := svc.CreateCampaign(context.Background(), uuid.New(), req)

		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("zero goal", func(t *testing.T) {
		svc, _, _ := newTestCampaignService(t)
		req := validCampaignCreate()
		req.GoalAmount = decimal.Zero

		_, err := svc.CreateCampaign(context.Background(), uuid.New(), req)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("goal with sub-cent precision", func(t *testing.T) {
		svc, _, _ := newTestCampaignService(t)
		req := validCampaignCreate()
		req.GoalAmount = decimal.RequireFromString("99.999")

		_, err := svc.CreateCampaign(context.Background(), uuid.New(), req)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestCampaignService_GetCampaign(t *testing.T) {
	svc, _, campaigns := newTestCampaignService(t)
	id := uuid.New()

	campaigns.EXPECT().GetCampaign(gomock.Any(), id).Return(models.Campaign{
		ID:            id,
		GoalAmount:    decimal.NewFromInt(300),
		CurrentAmount: decimal.NewFromInt(100),
		EndDate:       testNow.Add(10*24*time.Hour + time.Hour),
	}, nil)
	campaigns.EXPECT().CountDonors(gomock.Any(), id).Return(int64(4), nil)

	details, err := svc.GetCampaign(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 33.33, details.PercentFunded)
	assert.Equal(t, 10, details.DaysLeft)
	assert.Equal(t, int64(4), details.TotalDonors)
}

func TestCampaignService_GetCampaign_NotFound(t *testing.T) {
	svc, _, campaigns := newTestCampaignService(t)
	campaigns.EXPECT().GetCampaign(gomock.Any(), gomock.Any()).Return(models.Campaign{}, store.ErrCampaignNotFound)

	_, err := svc.GetCampaign(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrCampaignNotFound)
}

func TestCampaignService_ListCampaigns_SetsNow(t *testing.T) {
	svc, _, campaigns := newTestCampaignService(t)

	campaigns.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.CampaignFilter) ([]models.Campaign, error) {
			assert.True(t, f.ActiveOnly)
			assert.Equal(t, testNow, f.Now)
			return []models.Campaign{{}}, nil
		})

	got, err := svc.ListCampaigns(context.Background(), models.CampaignFilter{ActiveOnly: true})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCampaignService_UpdateCampaign(t *testing.T) {
	adminID, tenantID, campaignID := uuid.New(), uuid.New(), uuid.New()
	existing := models.Campaign{
		ID:        campaignID,
		TenantID:  tenantID,
		StartDate: testNow,
		EndDate:   testNow.AddDate(0, 1, 0),
	}
	title := "New title"
	early := testNow.AddDate(0, 0, -1)
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name     string
		campaign models.Campaign
		update   models.CampaignUpdate
		wantErr  error
	}{
		{name: "own campaign", campaign: existing, update: models.CampaignUpdate{Title: &title}},
		{name: "foreign campaign", campaign: models.Campaign{ID: campaignID, TenantID: uuid.New()}, update: models.CampaignUpdate{Title: &title}, wantErr: ErrForbidden},
		{name: "empty update", campaign: existing, wantErr: ErrNothingToUpdate},
		{name: "end before start", campaign: existing, update: models.CampaignUpdate{EndDate: &early}, wantErr: ErrInvalidDates},
		{name: "negative goal", campaign: existing, update: models.CampaignUpdate{GoalAmount: &negative}, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tenants, campaigns := newTestCampaignService(t)
			tenants.EXPECT().GetTenantByAdmin(gomock.Any(), adminID).Return(models.Tenant{ID: tenantID}, nil)
			campaigns.EXPECT().GetCampaign(gomock.Any(), campaignID).Return(tt.campaign, nil)
			if tt.wantErr == nil {
				campaigns.EXPECT().UpdateCampaign(gomock.Any(), campaignID, tt.update).
					Return(models.Campaign{ID: campaignID, Title: title}, nil)
			}

			got, err := svc.UpdateCampaign(context.Background(), adminID, campaignID, tt.update)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, title, got.Title)
		})
	}
}

func TestCampaignService_GetCampaignStats(t *testing.T) {
	svc, _, campaigns := newTestCampaignService(t)
	id := uuid.New()

	campaigns.EXPECT().GetCampaign(gomock.Any(), id).Return(models.Campaign{
		ID:            id,
		GoalAmount:    decimal.RequireFromString("500.00"),
		CurrentAmount: decimal.RequireFromString("125.50"),
		StartDate:     testNow.AddDate(0, 0, -5),
		EndDate:       testNow.AddDate(0, 0, -1),
	}, nil)

	stats, err := svc.GetCampaignStats(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 25.1, stats.PercentFunded)
	assert.True(t, decimal.RequireFromString("374.5").Equal(stats.AmountRemaining))
	assert.Equal(t, 0, stats.DaysLeft)
	assert.False(t, stats.IsActive)
}

func TestCampaignService_CompleteEndedCampaigns(t *testing.T) {
	svc, _, campaigns := newTestCampaignService(t)
	campaigns.EXPECT().CompleteEndedCampaigns(gomock.Any(), testNow).Return(int64(3), nil)

	n, err := svc.CompleteEndedCampaigns(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPercentFunded_ZeroGoal(t *testing.T) {
	assert.Equal(t, 0.0, percentFunded(decimal.NewFromInt(10), decimal.Zero))
}
