package establishmentRepo

import "barberbook/models"

// EstablishmentRepository defines persistence operations for business profiles.
type EstablishmentRepository interface {
	Create(est *models.Establishment) error
	Update(est *models.Establishment) error
	GetByID(id string) (*models.Establishment, error)
	GetByOwnerID(ownerID string) (*models.Establishment, error)
}
