package availabilityRepo

import "barberbook/models"

// AvailabilityRepository defines persistence for weekly availability
// templates. A save replaces the employee's full template; there are no
// partial-interval edits.
type AvailabilityRepository interface {
	Replace(employeeID string, days []models.AvailabilityDay) (*models.Availability, error)
	GetByEmployee(employeeID string) (*models.Availability, error)
}
