package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overlapFilter matches occupying appointments for the employee whose
// [appointmentDate, appointmentDate+totalDuration) range intersects
// [start, end). totalDuration is minutes; $add on a date takes milliseconds.
func overlapFilter(employeeID string, start, end time.Time) bson.M {
	return bson.M{
		"employeeId": employeeID,
		"status":     bson.M{"$in": []string{models.StatusPendingPayment, models.StatusConfirmed}},
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$lt": bson.A{"$appointmentDate", end}},
			bson.M{"$gt": bson.A{
				bson.M{"$add": bson.A{"$appointmentDate", bson.M{"$multiply": bson.A{"$totalDuration", 60000}}}},
				start,
			}},
		}},
	}
}

// CreateIfSlotFree re-checks for overlap and inserts the appointment as one
// transaction. The orchestrator also serializes callers per employee, so the
// check-then-insert inside the session cannot interleave with a competing
// admission for the same employee.
func (r *MongoAppointmentRepo) CreateIfSlotFree(ctx context.Context, appt *models.Appointment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(appt.EmployeeID, appt.StartTime, appt.EndTime()))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("appointment transaction failed: %w", err)
	}

	return nil
}
