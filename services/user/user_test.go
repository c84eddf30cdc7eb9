package user

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByTokenHash(hash string) (*models.User, error) {
	for _, u := range r.users {
		if u.TokenHash == hash {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) SetTokenHash(id, hash string) error {
	r.users[id].TokenHash = hash
	return nil
}
func (r *memUserRepo) SetEstablishment(id, establishmentID string) error {
	r.users[id].EstablishmentID = establishmentID
	return nil
}
func (r *memUserRepo) SetPlan(id string, active bool, expiresAt *time.Time) error {
	r.users[id].PlanActive = active
	r.users[id].PlanExpiresAt = expiresAt
	return nil
}
func (r *memUserRepo) DeactivateExpiredPlans(now time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.PlanActive && u.PlanExpiresAt != nil && u.PlanExpiresAt.Before(now) {
			u.PlanActive = false
			n++
		}
	}
	return n, nil
}

func TestRegisterUserOwner(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterUser(SignupRequest{
		Email:    "Dono@Barbearia.BR",
		Password: "s3cret",
		Role:     models.RoleEstablishment,
	})
	require.NoError(t, err)
	assert.Len(t, resp.ID, 24)
	assert.NotEmpty(t, resp.Token)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "dono@barbearia.br", stored.Email)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
	assert.NotEmpty(t, stored.TokenHash)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.RegisterUser(SignupRequest{Email: "a@b.c", Role: models.RoleEstablishment})
	assert.Error(t, err)

	_, err = svc.RegisterUser(SignupRequest{Email: "a@b.c", Password: "x", Role: "admin"})
	assert.Error(t, err)

	// Employees must be attached to an establishment at signup.
	_, err = svc.RegisterUser(SignupRequest{Email: "a@b.c", Password: "x", Role: models.RoleEmployee})
	assert.Error(t, err)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.RegisterUser(SignupRequest{Email: "a@b.c", Password: "x", Role: models.RoleEstablishment})
	require.NoError(t, err)
	_, err = svc.RegisterUser(SignupRequest{Email: "A@B.C", Password: "y", Role: models.RoleEstablishment})
	assert.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.RegisterUser(SignupRequest{
		Email: "a@b.c", Password: "s3cret", Role: models.RoleEstablishment,
	})
	require.NoError(t, err)

	resp, err := svc.AuthenticateUser("a@b.c", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.AuthenticateUser("a@b.c", "wrong")
	assert.Error(t, err)
	_, err = svc.AuthenticateUser("nobody@b.c", "s3cret")
	assert.Error(t, err)
}

func TestAuthenticateRotatesTokenHash(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	created, err := svc.RegisterUser(SignupRequest{
		Email: "a@b.c", Password: "s3cret", Role: models.RoleEstablishment,
	})
	require.NoError(t, err)
	firstHash := repo.users[created.ID].TokenHash

	time.Sleep(1100 * time.Millisecond) // token iat has second resolution
	_, err = svc.AuthenticateUser("a@b.c", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, firstHash, repo.users[created.ID].TokenHash)
}
