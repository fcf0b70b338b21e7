// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/donate-hub/internal/app"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/internal/validators"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
)

// ── AuthService ──────────────────────────────────────────────────────────────

type mockAuthSvc struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn  func(ctx context.Context, userID uuid.UUID) (models.User, error)
	parseFn    func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthSvc) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{ID: uuid.New(), Email: req.Email, Role: models.RoleDonor}, nil
}

func (m *mockAuthSvc) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{ID: uuid.New(), Email: req.Email}, nil
}

func (m *mockAuthSvc) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{ID: userID}, nil
}

func (m *mockAuthSvc) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "token-" + user.ID.String(), UserID: user.ID}, nil
}

// ParseToken accepts "valid-<uuid>" tokens unless parseFn is set.
func (m *mockAuthSvc) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, token)
	}
	id, err := uuid.Parse(strings.TrimPrefix(token, "valid-"))
	if err != nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: id, Role: models.RoleDonor}, nil
}

// ── TenantService ────────────────────────────────────────────────────────────

type mockTenantSvc struct {
	createFn func(ctx context.Context, adminID uuid.UUID, req models.TenantCreate) (models.Tenant, error)
	getFn    func(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error)
	listFn   func(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error)
	updateFn func(ctx context.Context, userID, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error)
}

func (m *mockTenantSvc) CreateTenant(ctx context.Context, adminID uuid.UUID, req models.TenantCreate) (models.Tenant, error) {
	if m.createFn != nil {
		return m.createFn(ctx, adminID, req)
	}
	return models.Tenant{ID: uuid.New(), Name: req.Name, AdminID: adminID}, nil
}

func (m *mockTenantSvc) GetTenant(ctx context.Context, tenantID uuid.UUID) (models.Tenant, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tenantID)
	}
	return models.Tenant{ID: tenantID}, nil
}

func (m *mockTenantSvc) ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.TenantSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.TenantSummary{}, nil
}

func (m *mockTenantSvc) UpdateTenant(ctx context.Context, userID, tenantID uuid.UUID, update models.TenantUpdate) (models.Tenant, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, tenantID, update)
	}
	return models.Tenant{ID: tenantID, AdminID: userID}, nil
}

// ── AdminService ─────────────────────────────────────────────────────────────

// mockAdminSvc lets only the users in admins through unless requireFn is set.
type mockAdminSvc struct {
	admins    map[uuid.UUID]bool
	requireFn func(ctx context.Context, userID uuid.UUID) error
	listFn    func(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error)
	getFn     func(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error)
	verifyFn  func(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error)
}

func (m *mockAdminSvc) RequirePlatformAdmin(ctx context.Context, userID uuid.UUID) error {
	if m.requireFn != nil {
		return m.requireFn(ctx, userID)
	}
	if !m.admins[userID] {
		return service.ErrForbidden
	}
	return nil
}

func (m *mockAdminSvc) ListTenants(ctx context.Context, filter models.TenantFilter) ([]models.AdminTenant, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.AdminTenant{}, nil
}

func (m *mockAdminSvc) GetTenant(ctx context.Context, tenantID uuid.UUID) (models.AdminTenant, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tenantID)
	}
	return models.AdminTenant{Tenant: models.Tenant{ID: tenantID}}, nil
}

func (m *mockAdminSvc) VerifyTenant(ctx context.Context, tenantID uuid.UUID, verified bool) (models.Tenant, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, tenantID, verified)
	}
	return models.Tenant{ID: tenantID, IsVerified: verified}, nil
}

// ── CampaignService ──────────────────────────────────────────────────────────

type mockCampaignSvc struct {
	createFn func(ctx context.Context, adminID uuid.UUID, req models.CampaignCreate) (models.Campaign, error)
	getFn    func(ctx context.Context, campaignID uuid.UUID) (models.CampaignDetails, error)
	listFn   func(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	updateFn func(ctx context.Context, adminID, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error)
	statsFn  func(ctx context.Context, campaignID uuid.UUID) (models.CampaignStats, error)
}

func (m *mockCampaignSvc) CreateCampaign(ctx context.Context, adminID uuid.UUID, req models.CampaignCreate) (models.Campaign, error) {
	if m.createFn != nil {
		return m.createFn(ctx, adminID, req)
	}
	return models.Campaign{ID: uuid.New(), Title: req.Title}, nil
}

func (m *mockCampaignSvc) GetCampaign(ctx context.Context, campaignID uuid.UUID) (models.CampaignDetails, error) {
	if m.getFn != nil {
		return m.getFn(ctx, campaignID)
	}
	return models.CampaignDetails{Campaign: models.Campaign{ID: campaignID}}, nil
}

func (m *mockCampaignSvc) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.Campaign{}, nil
}

func (m *mockCampaignSvc) UpdateCampaign(ctx context.Context, adminID, campaignID uuid.UUID, update models.CampaignUpdate) (models.Campaign, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, adminID, campaignID, update)
	}
	return models.Campaign{ID: campaignID}, nil
}

func (m *mockCampaignSvc) GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (models.CampaignStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, campaignID)
	}
	return models.CampaignStats{}, nil
}

func (m *mockCampaignSvc) CompleteEndedCampaigns(context.Context) (int64, error) {
	return 0, nil
}

// ── DonationService ──────────────────────────────────────────────────────────

type mockDonationSvc struct {
	donateFn func(ctx context.Context, req models.DonationCreate) (models.Donation, error)
	listFn   func(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error)
}

func (m *mockDonationSvc) Donate(ctx context.Context, req models.DonationCreate) (models.Donation, error) {
	if m.donateFn != nil {
		return m.donateFn(ctx, req)
	}
	return models.Donation{ID: uuid.New(), CampaignID: req.CampaignID, Amount: req.Amount}, nil
}

func (m *mockDonationSvc) ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]models.Donation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, campaignID)
	}
	return []models.Donation{}, nil
}

// ── StatsService ─────────────────────────────────────────────────────────────

type mockStatsSvc struct {
	dashboardFn func(ctx context.Context, adminID uuid.UUID) (models.DashboardStats, error)
}

func (m *mockStatsSvc) GetDashboard(ctx context.Context, adminID uuid.UUID) (models.DashboardStats, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, adminID)
	}
	return models.DashboardStats{TenantID: uuid.New()}, nil
}

// ── AppInfoService ───────────────────────────────────────────────────────────

type mockAppInfoSvc struct {
	healthErr error
}

func (m *mockAppInfoSvc) GetAppVersion(context.Context) string {
	return "test-version"
}

func (m *mockAppInfoSvc) CheckHealth(context.Context) (models.HealthStatus, error) {
	if m.healthErr != nil {
		return models.HealthStatus{Status: "degraded", Version: "test-version", Database: "down"}, m.healthErr
	}
	return models.HealthStatus{Status: "ok", Version: "test-version", Database: "up"}, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// newMockServices fills every service with a default mock; tests override
// the ones they care about.
func newMockServices() *service.Services {
	return &service.Services{
		AuthService:     &mockAuthSvc{},
		TenantService:   &mockTenantSvc{},
		AdminService:    &mockAdminSvc{},
		CampaignService: &mockCampaignSvc{},
		DonationService: &mockDonationSvc{},
		StatsService:    &mockStatsSvc{},
		AppInfoService:  &mockAppInfoSvc{},
	}
}

// newTestPipeline mounts the route collection in the real pipeline so the
// JSON stage and the error handler take part in every request.
func newTestPipeline(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	h := NewHandler(services, validators.NewStructValidator(), logger.Nop())
	return app.New(h.Init(), NewErrorHandler(logger.Nop(), false), logger.Nop(),
		app.WithMiddleware("request-id", h.WithRequestID),
		app.WithHandler("/", http.HandlerFunc(h.Welcome)),
	)
}

// do runs a request through handler. A non-empty body is sent as JSON.
func do(handler http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func bearer(userID uuid.UUID) []string {
	return []string{"Authorization", "Bearer valid-" + userID.String()}
}
