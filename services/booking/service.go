package booking

import (
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	availabilityRepo "barberbook/database/repository/availability"
	employeeRepo "barberbook/database/repository/employee"
	establishmentRepo "barberbook/database/repository/establishment"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/payment"

	"github.com/go-redis/redis/v8"
)

// BookingService is the public surface of the availability and admission
// engine.
type BookingService interface {
	// AvailableTimes lists bookable "HH:MM" starts for an employee on a
	// date. An empty result carries a reason code.
	AvailableTimes(employeeID string, date time.Time) (*AvailableTimesResult, error)

	// InitiateBooking validates and admits a public booking request,
	// creating a pending_payment appointment and a payment preference.
	InitiateBooking(req BookingRequest) (*BookingResult, error)

	// ReplaceTemplate saves an employee's full weekly availability.
	ReplaceTemplate(establishmentID, employeeID string, days []models.AvailabilityDay) (*models.Availability, error)

	// Template fetches an employee's weekly availability, nil if unset.
	Template(employeeID string) (*models.Availability, error)

	// ListAppointments returns an establishment's appointments.
	ListAppointments(establishmentID string) ([]models.Appointment, error)

	// UpdateStatus applies a manual staff transition.
	UpdateStatus(establishmentID, appointmentID, status string) (*models.Appointment, error)

	// ExpireStalePendingAppointments cancels pending holds older than the
	// threshold. Scheduling belongs to the caller.
	ExpireStalePendingAppointments(threshold time.Duration) (int64, error)
}

// Engine implements BookingService on top of the Mongo repositories, the
// payment gateway and a Redis admission lock.
type Engine struct {
	Appointments   appointmentRepo.AppointmentRepository
	Availabilities availabilityRepo.AvailabilityRepository
	Employees      employeeRepo.EmployeeRepository
	Establishments establishmentRepo.EstablishmentRepository
	Services       serviceRepo.ServiceRepository
	Gateway        payment.Gateway
	LockClient     *redis.Client
	Granularity    time.Duration

	// Now is the clock; tests override it. Nil means time.Now.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
