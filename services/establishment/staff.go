package establishment

import (
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateEmployee adds a staff member to the establishment.
func (s *DefaultEstablishmentService) CreateEmployee(establishmentID string, emp models.Employee) (*models.Employee, error) {
	if emp.Name == "" {
		return nil, fmt.Errorf("employee name is required")
	}

	now := time.Now()
	emp.ID = primitive.NewObjectID().Hex()
	emp.EstablishmentID = establishmentID
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if err := s.Employees.Create(&emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &emp, nil
}

// UpdateEmployee updates a staff member after checking ownership.
func (s *DefaultEstablishmentService) UpdateEmployee(establishmentID string, emp models.Employee) (*models.Employee, error) {
	current, err := s.employeeOf(establishmentID, emp.ID)
	if err != nil {
		return nil, err
	}

	if emp.Name != "" {
		current.Name = emp.Name
	}
	if emp.Email != "" {
		current.Email = emp.Email
	}
	if emp.Phone != "" {
		current.Phone = emp.Phone
	}
	current.UpdatedAt = time.Now()

	if err := s.Employees.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return current, nil
}

// DeleteEmployee removes a staff member after checking ownership. Their past
// appointments stay on record.
func (s *DefaultEstablishmentService) DeleteEmployee(establishmentID, employeeID string) error {
	if _, err := s.employeeOf(establishmentID, employeeID); err != nil {
		return err
	}
	if err := s.Employees.Delete(employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// ListEmployees returns the establishment's staff.
func (s *DefaultEstablishmentService) ListEmployees(establishmentID string) ([]models.Employee, error) {
	return s.Employees.ListByEstablishment(establishmentID)
}

func (s *DefaultEstablishmentService) employeeOf(establishmentID, employeeID string) (*models.Employee, error) {
	emp, err := s.Employees.GetByID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp == nil || emp.EstablishmentID != establishmentID {
		return nil, fmt.Errorf("employee not found in your establishment")
	}
	return emp, nil
}
