package serviceRepo

import "barberbook/models"

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
	GetByID(id string) (*models.Service, error)
	GetByIDs(ids []string) ([]models.Service, error)
	ListByEstablishment(establishmentID string) ([]models.Service, error)
}
