package booking

import (
	"time"

	"barberbook/utils"

	"go.uber.org/zap"
)

// ExpireStalePendingAppointments cancels pending_payment holds older than the
// threshold, freeing their slots. The engine owns no timer; the background
// worker decides when this runs.
func (e *Engine) ExpireStalePendingAppointments(threshold time.Duration) (int64, error) {
	released, err := e.Appointments.CancelStalePending(e.now().Add(-threshold))
	if err != nil {
		return 0, err
	}
	if released > 0 {
		utils.GetLogger().Info("released stale pending appointments", zap.Int64("count", released))
	}
	return released, nil
}
