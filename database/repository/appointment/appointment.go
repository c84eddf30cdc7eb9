package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"barberbook/models"
)

// ErrSlotTaken is returned by CreateIfSlotFree when an occupying appointment
// already overlaps the requested range.
var ErrSlotTaken = errors.New("slot already taken by an overlapping appointment")

// AppointmentRepository defines persistence for appointments. Appointments
// are never deleted, only status-transitioned.
type AppointmentRepository interface {
	GetByID(id string) (*models.Appointment, error)
	ListByEstablishment(establishmentID string) ([]models.Appointment, error)

	// ListOccupyingInWindow returns appointments for the employee whose
	// start falls in [from, to) and whose status occupies the slot.
	ListOccupyingInWindow(employeeID string, from, to time.Time) ([]models.Appointment, error)

	// CreateIfSlotFree atomically inserts the appointment unless an
	// occupying appointment overlaps [StartTime, EndTime). Returns
	// ErrSlotTaken on overlap.
	CreateIfSlotFree(ctx context.Context, appt *models.Appointment) error

	// UpdateStatusFrom applies a transition keyed on the source state:
	// the document moves from → to only if its status is exactly `from`.
	// paymentID, when non-empty, is stored alongside. Returns whether a
	// document was transitioned.
	UpdateStatusFrom(id, from, to, paymentID string) (bool, error)

	// SetStatus applies a manual staff transition without a source-state
	// guard. Callers validate the target against the status enum first.
	SetStatus(id, status string) error

	// CancelStalePending cancels pending_payment appointments created
	// before the threshold, returning how many were released.
	CancelStalePending(olderThan time.Time) (int64, error)
}
