package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
	"barberbook/services/payment"
	"barberbook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingRequest is a public client's booking attempt.
type BookingRequest struct {
	EstablishmentID string
	EmployeeID      string
	ServiceIDs      []string
	ClientName      string
	ClientPhone     string
	Start           time.Time
	RedirectBaseURL string
}

// BookingResult is returned on successful initiation. When preference
// creation fails after the appointment row exists, InitiateBooking returns
// the result with the appointment id set alongside a gateway_unavailable
// error: the reservation is kept, not rolled back.
type BookingResult struct {
	AppointmentID      string `json:"appointmentId"`
	PaymentRedirectURL string `json:"paymentRedirectUrl"`
}

// InitiateBooking admits a booking request and opens payment for it.
//
// Admission (availability containment, conflict check, insert) runs under a
// per-employee Redis lock, and the insert itself re-checks overlap inside a
// Mongo transaction, so two concurrent requests for overlapping ranges of
// the same employee can never both succeed.
func (e *Engine) InitiateBooking(req BookingRequest) (*BookingResult, error) {
	logger := utils.GetLogger()

	emp, svcs, err := e.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	totalDuration := 0
	totalAmount := 0.0
	for _, s := range svcs {
		totalDuration += s.DurationMin
		totalAmount += s.Price
	}
	if totalDuration <= 0 {
		return nil, NewInvalidReference("selected services have no duration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Without Redis the transactional insert is still the hard gate; the
	// lock only narrows the window where both requests pay the full check.
	if e.LockClient != nil {
		lock := utils.NewEmployeeLock(e.LockClient, emp.ID, 10*time.Second)
		if err := lock.Acquire(ctx); err != nil {
			return nil, fmt.Errorf("could not serialize booking for employee %s: %w", emp.ID, err)
		}
		defer func() {
			if err := lock.Release(ctx); err != nil {
				logger.Warn("failed to release booking lock", zap.String("employeeId", emp.ID), zap.Error(err))
			}
		}()
	}

	appt, err := e.admit(ctx, req, totalDuration, totalAmount)
	if err != nil {
		return nil, err
	}

	pref, err := e.Gateway.CreatePreference(ctx, models.PreferenceRequest{
		Items:             preferenceItems(svcs),
		PayerName:         req.ClientName,
		ExternalReference: payment.AppointmentReference(appt.ID),
		RedirectBaseURL:   req.RedirectBaseURL,
	})
	if err != nil {
		// The hold stays: rolling it back here would reopen the race the
		// insert just won. The expiry sweep reclaims it if payment never
		// starts.
		logger.Error("payment preference creation failed; keeping pending appointment",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return &BookingResult{AppointmentID: appt.ID},
			NewGatewayUnavailable("payment could not be started; please try again")
	}

	logger.Info("booking initiated",
		zap.String("appointmentId", appt.ID),
		zap.String("employeeId", emp.ID),
		zap.Time("start", appt.StartTime))

	return &BookingResult{AppointmentID: appt.ID, PaymentRedirectURL: pref.InitPoint}, nil
}

// resolveReferences checks the establishment/employee/service triple is
// consistent and returns the resolved records.
func (e *Engine) resolveReferences(req BookingRequest) (*models.Employee, []models.Service, error) {
	if len(req.ServiceIDs) == 0 {
		return nil, nil, NewInvalidReference("at least one service is required")
	}

	est, err := e.Establishments.GetByID(req.EstablishmentID)
	if err != nil {
		return nil, nil, err
	}
	if est == nil {
		return nil, nil, NewInvalidReference("establishment not found")
	}

	emp, err := e.Employees.GetByID(req.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	if emp == nil || emp.EstablishmentID != est.ID {
		return nil, nil, NewInvalidReference("employee not found or does not belong to the establishment")
	}

	svcs, err := e.Services.GetByIDs(req.ServiceIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(svcs) != len(req.ServiceIDs) {
		return nil, nil, NewInvalidReference("one or more services not found")
	}
	for _, s := range svcs {
		if s.EstablishmentID != est.ID {
			return nil, nil, NewInvalidReference("service does not belong to the establishment")
		}
	}
	return emp, svcs, nil
}

// admit performs the availability and conflict checks and inserts the
// pending_payment appointment. Must run under the employee lock.
func (e *Engine) admit(ctx context.Context, req BookingRequest, totalDuration int, totalAmount float64) (*models.Appointment, error) {
	start := req.Start
	end := start.Add(time.Duration(totalDuration) * time.Minute)

	if start.Before(e.now()) {
		return nil, NewOutsideAvailability("requested time is in the past")
	}

	tmpl, err := e.Availabilities.GetByEmployee(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, NewOutsideAvailability("availability not configured for this employee")
	}
	entry := tmpl.DayFor(start.Weekday())
	if entry == nil {
		return nil, NewOutsideAvailability("employee not available on this day of week")
	}
	if !containedInDay(start, end, entry) {
		return nil, NewOutsideAvailability("requested time is outside the employee's availability")
	}

	// Window wide enough to catch anything overlapping [start, end).
	windowFrom := start.Add(-time.Duration(totalDuration) * time.Minute)
	existing, err := e.Appointments.ListOccupyingInWindow(req.EmployeeID, windowFrom, end)
	if err != nil {
		return nil, err
	}
	if Overlaps(start, end, OccupiedIntervals(existing)) {
		return nil, NewSlotConflict("time unavailable for this employee due to another appointment")
	}

	appt := &models.Appointment{
		ID:               primitive.NewObjectID().Hex(),
		EstablishmentID:  req.EstablishmentID,
		EmployeeID:       req.EmployeeID,
		ServiceIDs:       req.ServiceIDs,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		StartTime:        start,
		TotalDurationMin: totalDuration,
		TotalAmount:      totalAmount,
		Status:           models.StatusPendingPayment,
	}

	if err := e.Appointments.CreateIfSlotFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, NewSlotConflict("time unavailable for this employee due to another appointment")
		}
		return nil, err
	}
	return appt, nil
}

// containedInDay reports whether [start, end) sits fully inside one of the
// day's open intervals. End may equal the interval end exactly.
func containedInDay(start, end time.Time, entry *models.AvailabilityDay) bool {
	for _, iv := range entry.Intervals {
		startMin, err := ParseClock(iv.Start)
		if err != nil {
			continue
		}
		endMin, err := ParseClock(iv.End)
		if err != nil {
			continue
		}
		ivStart := clockAt(start, startMin)
		ivEnd := clockAt(start, endMin)
		if !start.Before(ivStart) && !end.After(ivEnd) {
			return true
		}
	}
	return false
}

func preferenceItems(svcs []models.Service) []models.PreferenceItem {
	items := make([]models.PreferenceItem, 0, len(svcs))
	for _, s := range svcs {
		items = append(items, models.PreferenceItem{
			Title:     s.Name,
			Quantity:  1,
			UnitPrice: s.Price,
			Currency:  "BRL",
		})
	}
	return items
}
