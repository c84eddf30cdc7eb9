package booking

import (
	"time"

	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// UpdateStatus applies a manual staff transition. The target must belong to
// the caller's establishment and the status must be a member of the closed
// enum; anything else fails without touching the record.
func (e *Engine) UpdateStatus(establishmentID, appointmentID, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, NewInvalidStatus("unknown appointment status: " + status)
	}

	appt, err := e.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.EstablishmentID != establishmentID {
		return nil, NewInvalidReference("appointment not found in your establishment")
	}

	// Staff may complete a confirmed appointment or cancel any appointment.
	// Moving into pending_payment or confirmed is the reconciler's job.
	switch status {
	case models.StatusCompleted:
		if appt.Status != models.StatusConfirmed {
			return nil, NewInvalidStatus("only confirmed appointments can be completed")
		}
	case models.StatusCancelled:
	default:
		return nil, NewInvalidStatus("status " + status + " cannot be set manually")
	}

	if err := e.Appointments.SetStatus(appointmentID, status); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment status updated by staff",
		zap.String("appointmentId", appointmentID),
		zap.String("from", appt.Status),
		zap.String("to", status))

	appt.Status = status
	appt.UpdatedAt = time.Now()
	return appt, nil
}

// ListAppointments returns all appointments of an establishment.
func (e *Engine) ListAppointments(establishmentID string) ([]models.Appointment, error) {
	return e.Appointments.ListByEstablishment(establishmentID)
}
