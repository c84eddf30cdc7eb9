package establishment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[string]*models.User
}

func (r *stubUsers) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *stubUsers) Update(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *stubUsers) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}
func (r *stubUsers) GetByEmail(string) (*models.User, error)     { return nil, nil }
func (r *stubUsers) GetByTokenHash(string) (*models.User, error) { return nil, nil }
func (r *stubUsers) SetTokenHash(string, string) error           { return nil }
func (r *stubUsers) SetEstablishment(id, establishmentID string) error {
	r.users[id].EstablishmentID = establishmentID
	return nil
}
func (r *stubUsers) SetPlan(id string, active bool, expiresAt *time.Time) error {
	r.users[id].PlanActive = active
	r.users[id].PlanExpiresAt = expiresAt
	return nil
}
func (r *stubUsers) DeactivateExpiredPlans(now time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.PlanActive && u.PlanExpiresAt != nil && u.PlanExpiresAt.Before(now) {
			u.PlanActive = false
			n++
		}
	}
	return n, nil
}

type recordingGateway struct {
	lastPreapproval *models.PreapprovalRequest
}

func (g *recordingGateway) CreatePreference(context.Context, models.PreferenceRequest) (*models.Preference, error) {
	return nil, fmt.Errorf("not implemented")
}
func (g *recordingGateway) CreatePlanPreapproval(_ context.Context, req models.PreapprovalRequest) (*models.Preference, error) {
	g.lastPreapproval = &req
	return &models.Preference{ID: "pre-1", InitPoint: "https://gateway.test/pre-1"}, nil
}
func (g *recordingGateway) GetPayment(context.Context, string) (*models.PaymentDetail, error) {
	return nil, fmt.Errorf("not implemented")
}
func (g *recordingGateway) GetPreapproval(context.Context, string) (*models.PreapprovalDetail, error) {
	return nil, fmt.Errorf("not implemented")
}

func newSubscriptionService() (*DefaultEstablishmentService, *stubUsers, *recordingGateway) {
	users := &stubUsers{users: map[string]*models.User{
		"owner-1": {ID: "owner-1", Role: models.RoleEstablishment},
		"emp-1":   {ID: "emp-1", Role: models.RoleEmployee},
	}}
	gw := &recordingGateway{}
	return &DefaultEstablishmentService{
		Users:            users,
		Gateway:          gw,
		MonthlyPlanPrice: 99.90,
		AnnualPlanPrice:  700.00,
	}, users, gw
}

func TestInitiateSubscriptionMonthly(t *testing.T) {
	svc, _, gw := newSubscriptionService()

	redirect, err := svc.InitiateSubscription("owner-1", models.PlanMonthly, "https://shop.test")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.test/pre-1", redirect)

	require.NotNil(t, gw.lastPreapproval)
	assert.Equal(t, 99.90, gw.lastPreapproval.Amount)
	assert.Equal(t, 1, gw.lastPreapproval.FrequencyMonths)
	assert.Equal(t, "BRL", gw.lastPreapproval.Currency)
	assert.Equal(t, "plano_mensal_user_owner-1", gw.lastPreapproval.ExternalReference)
}

func TestInitiateSubscriptionAnnual(t *testing.T) {
	svc, _, gw := newSubscriptionService()

	_, err := svc.InitiateSubscription("owner-1", models.PlanAnnual, "https://shop.test")
	require.NoError(t, err)
	assert.Equal(t, 700.00, gw.lastPreapproval.Amount)
	assert.Equal(t, 12, gw.lastPreapproval.FrequencyMonths)
	assert.Equal(t, "plano_anual_user_owner-1", gw.lastPreapproval.ExternalReference)
}

func TestInitiateSubscriptionRejectsNonOwner(t *testing.T) {
	svc, _, _ := newSubscriptionService()

	_, err := svc.InitiateSubscription("emp-1", models.PlanMonthly, "https://shop.test")
	assert.Error(t, err)
}

func TestInitiateSubscriptionRejectsUnknownPlan(t *testing.T) {
	svc, _, _ := newSubscriptionService()

	_, err := svc.InitiateSubscription("owner-1", "semanal", "https://shop.test")
	assert.Error(t, err)
}

func TestDeactivateExpiredPlans(t *testing.T) {
	svc, users, _ := newSubscriptionService()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	users.users["owner-1"].PlanActive = true
	users.users["owner-1"].PlanExpiresAt = &past
	users.users["owner-2"] = &models.User{
		ID: "owner-2", Role: models.RoleEstablishment, PlanActive: true, PlanExpiresAt: &future,
	}

	n, err := svc.DeactivateExpiredPlans()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.False(t, users.users["owner-1"].PlanActive)
	assert.True(t, users.users["owner-2"].PlanActive)
}
