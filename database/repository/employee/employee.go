package employeeRepo

import "barberbook/models"

// EmployeeRepository defines persistence operations for staff members.
type EmployeeRepository interface {
	Create(emp *models.Employee) error
	Update(emp *models.Employee) error
	Delete(id string) error
	GetByID(id string) (*models.Employee, error)
	ListByEstablishment(establishmentID string) ([]models.Employee, error)
}
