package establishment

import (
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateService adds an offering to the establishment's catalog.
func (s *DefaultEstablishmentService) CreateService(establishmentID string, svc models.Service) (*models.Service, error) {
	if err := validateService(&svc); err != nil {
		return nil, err
	}

	now := time.Now()
	svc.ID = primitive.NewObjectID().Hex()
	svc.EstablishmentID = establishmentID
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.Services.Create(&svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// UpdateService updates an offering after checking ownership. Existing
// appointments keep their snapshotted price and duration.
func (s *DefaultEstablishmentService) UpdateService(establishmentID string, svc models.Service) (*models.Service, error) {
	current, err := s.serviceOf(establishmentID, svc.ID)
	if err != nil {
		return nil, err
	}

	if svc.Name != "" {
		current.Name = svc.Name
	}
	if svc.Price > 0 {
		current.Price = svc.Price
	}
	if svc.DurationMin > 0 {
		current.DurationMin = svc.DurationMin
	}
	current.UpdatedAt = time.Now()

	if err := s.Services.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return current, nil
}

// DeleteService removes an offering after checking ownership.
func (s *DefaultEstablishmentService) DeleteService(establishmentID, serviceID string) error {
	if _, err := s.serviceOf(establishmentID, serviceID); err != nil {
		return err
	}
	if err := s.Services.Delete(serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// ListServices returns the establishment's catalog.
func (s *DefaultEstablishmentService) ListServices(establishmentID string) ([]models.Service, error) {
	return s.Services.ListByEstablishment(establishmentID)
}

func (s *DefaultEstablishmentService) serviceOf(establishmentID, serviceID string) (*models.Service, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil || svc.EstablishmentID != establishmentID {
		return nil, fmt.Errorf("service not found in your establishment")
	}
	return svc, nil
}

func validateService(svc *models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.Price <= 0 {
		return fmt.Errorf("service price must be positive")
	}
	if svc.DurationMin <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	return nil
}
