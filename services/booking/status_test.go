package booking

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusCompletesConfirmedAppointment(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)
	require.NoError(t, te.appts.SetStatus(result.AppointmentID, models.StatusConfirmed))

	appt, err := te.engine.UpdateStatus("est-1", result.AppointmentID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)

	stored, _ := te.appts.GetByID(result.AppointmentID)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestUpdateStatusCancelsPendingAppointment(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)

	appt, err := te.engine.UpdateStatus("est-1", result.AppointmentID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, appt.Status)
}

func TestUpdateStatusRejectsCompletingUnconfirmed(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)

	_, err = te.engine.UpdateStatus("est-1", result.AppointmentID, models.StatusCompleted)
	assert.Equal(t, CodeInvalidStatus, CodeOf(err))
}

func TestUpdateStatusRejectsManualConfirmation(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)

	_, err = te.engine.UpdateStatus("est-1", result.AppointmentID, models.StatusConfirmed)
	assert.Equal(t, CodeInvalidStatus, CodeOf(err))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	_, err := te.engine.UpdateStatus("est-1", "whatever", "archived")
	assert.Equal(t, CodeInvalidStatus, CodeOf(err))
}

func TestUpdateStatusRejectsForeignAppointment(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)

	_, err = te.engine.UpdateStatus("est-other", result.AppointmentID, models.StatusCancelled)
	assert.Equal(t, CodeInvalidReference, CodeOf(err))
}

func TestUpdateStatusRejectsMissingAppointment(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	_, err := te.engine.UpdateStatus("est-1", "missing", models.StatusCancelled)
	assert.Equal(t, CodeInvalidReference, CodeOf(err))
}

func TestExpireStalePendingAppointments(t *testing.T) {
	now := monday.Add(-48 * time.Hour)
	te := newTestEngine(now)

	stale, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)
	fresh, err := te.engine.InitiateBooking(bookingReq(at(monday, "14:00")))
	require.NoError(t, err)

	// Pin creation times to the engine clock: one hold past the TTL, one
	// within it.
	te.appts.appts[stale.AppointmentID].CreatedAt = now.Add(-time.Hour)
	te.appts.appts[fresh.AppointmentID].CreatedAt = now

	released, err := te.engine.ExpireStalePendingAppointments(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	staleAppt, _ := te.appts.GetByID(stale.AppointmentID)
	assert.Equal(t, models.StatusCancelled, staleAppt.Status)
	freshAppt, _ := te.appts.GetByID(fresh.AppointmentID)
	assert.Equal(t, models.StatusPendingPayment, freshAppt.Status)
}

func TestExpiredHoldFreesSlot(t *testing.T) {
	now := monday.Add(-48 * time.Hour)
	te := newTestEngine(now)

	held, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	require.NoError(t, err)
	te.appts.appts[held.AppointmentID].CreatedAt = now.Add(-time.Hour)

	_, err = te.engine.ExpireStalePendingAppointments(30 * time.Minute)
	require.NoError(t, err)

	_, err = te.engine.InitiateBooking(bookingReq(at(monday, "10:00")))
	assert.NoError(t, err)
}
