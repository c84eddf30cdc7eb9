package establishment

import (
	"fmt"
	"time"

	employeeRepo "barberbook/database/repository/employee"
	establishmentRepo "barberbook/database/repository/establishment"
	serviceRepo "barberbook/database/repository/service"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/services/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EstablishmentService defines business logic for owner-facing profile,
// staff and catalog management, plus subscription checkout.
type EstablishmentService interface {
	CreateEstablishment(ownerID string, est models.Establishment) (*models.Establishment, error)
	UpdateEstablishment(ownerID string, est models.Establishment) (*models.Establishment, error)
	GetEstablishment(id string) (*models.Establishment, error)
	GetByOwner(ownerID string) (*models.Establishment, error)

	CreateEmployee(establishmentID string, emp models.Employee) (*models.Employee, error)
	UpdateEmployee(establishmentID string, emp models.Employee) (*models.Employee, error)
	DeleteEmployee(establishmentID, employeeID string) error
	ListEmployees(establishmentID string) ([]models.Employee, error)

	CreateService(establishmentID string, svc models.Service) (*models.Service, error)
	UpdateService(establishmentID string, svc models.Service) (*models.Service, error)
	DeleteService(establishmentID, serviceID string) error
	ListServices(establishmentID string) ([]models.Service, error)

	// InitiateSubscription opens a recurring checkout for the owner's plan
	// and returns the redirect URL.
	InitiateSubscription(ownerID, planType, backURL string) (string, error)

	// DeactivateExpiredPlans flips planActive off for owners past expiry.
	DeactivateExpiredPlans() (int64, error)
}

// DefaultEstablishmentService is the production implementation.
type DefaultEstablishmentService struct {
	Establishments   establishmentRepo.EstablishmentRepository
	Employees        employeeRepo.EmployeeRepository
	Services         serviceRepo.ServiceRepository
	Users            userRepo.UserRepository
	Gateway          payment.Gateway
	MonthlyPlanPrice float64
	AnnualPlanPrice  float64
}

// CreateEstablishment creates the owner's business profile. Each owner
// account gets exactly one; the public link is derived from the new id.
func (s *DefaultEstablishmentService) CreateEstablishment(ownerID string, est models.Establishment) (*models.Establishment, error) {
	if est.Name == "" {
		return nil, fmt.Errorf("establishment name is required")
	}

	existing, err := s.Establishments.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing establishment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("owner already has an establishment")
	}

	now := time.Now()
	est.ID = primitive.NewObjectID().Hex()
	est.OwnerID = ownerID
	est.PublicLink = "/" + est.ID
	est.CreatedAt = now
	est.UpdatedAt = now

	if err := s.Establishments.Create(&est); err != nil {
		return nil, fmt.Errorf("failed to create establishment: %w", err)
	}
	if err := s.Users.SetEstablishment(ownerID, est.ID); err != nil {
		return nil, fmt.Errorf("failed to link establishment to owner: %w", err)
	}
	return &est, nil
}

// UpdateEstablishment updates the owner's profile in place.
func (s *DefaultEstablishmentService) UpdateEstablishment(ownerID string, est models.Establishment) (*models.Establishment, error) {
	current, err := s.Establishments.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("establishment not found")
	}

	if est.Name != "" {
		current.Name = est.Name
	}
	if est.Address != "" {
		current.Address = est.Address
	}
	if est.Phone != "" {
		current.Phone = est.Phone
	}
	if est.Description != "" {
		current.Description = est.Description
	}
	current.UpdatedAt = time.Now()

	if err := s.Establishments.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update establishment: %w", err)
	}
	return current, nil
}

// GetEstablishment retrieves a profile by id.
func (s *DefaultEstablishmentService) GetEstablishment(id string) (*models.Establishment, error) {
	est, err := s.Establishments.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment: %w", err)
	}
	if est == nil {
		return nil, fmt.Errorf("establishment not found")
	}
	return est, nil
}

// GetByOwner retrieves the profile owned by the given account, nil when the
// owner has not created one yet.
func (s *DefaultEstablishmentService) GetByOwner(ownerID string) (*models.Establishment, error) {
	return s.Establishments.GetByOwnerID(ownerID)
}
