package userRepo

import (
	"time"

	"barberbook/models"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	SetTokenHash(id, hash string) error
	SetEstablishment(id, establishmentID string) error

	// SetPlan activates or deactivates the subscription plan on an owner
	// account. expiresAt is nil when deactivating.
	SetPlan(id string, active bool, expiresAt *time.Time) error

	// DeactivateExpiredPlans flips planActive off for every owner whose
	// expiry has passed, returning how many accounts were touched.
	DeactivateExpiredPlans(now time.Time) (int64, error)
}
