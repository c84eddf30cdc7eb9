package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// Reconciler drives appointment and subscription state from gateway
// notifications. A notification is only a hint: the authoritative record is
// always re-fetched by id before anything changes, so replayed, reordered or
// forged payloads cannot move state they should not.
type Reconciler struct {
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	Gateway      Gateway
	Now          func() time.Time
}

func (r *Reconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Reconcile processes one webhook event. A nil return means the event was
// handled or deliberately ignored and the gateway should receive a 200;
// a non-nil return means a transient failure worth a gateway retry.
func (r *Reconciler) Reconcile(ctx context.Context, event models.WebhookEvent) error {
	logger := utils.GetLogger()

	if event.Data.ID == "" {
		logger.Warn("webhook event without data id; ignoring", zap.String("type", event.Type))
		return nil
	}

	switch event.Type {
	case models.EventPayment:
		return r.reconcilePayment(ctx, event.Data.ID)
	case models.EventPreapproval, "subscription", "subscription_preapproval":
		return r.reconcilePreapproval(ctx, event.Data.ID)
	default:
		logger.Info("ignoring webhook event of unhandled type",
			zap.String("type", event.Type), zap.String("id", event.Data.ID))
		return nil
	}
}

func (r *Reconciler) reconcilePayment(ctx context.Context, paymentID string) error {
	logger := utils.GetLogger()

	detail, err := r.Gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	ref, err := ParseReference(detail.ExternalReference)
	if err != nil {
		var unrec *ErrUnrecognizedReference
		if errors.As(err, &unrec) {
			logger.Warn("payment carries unrecognized external reference; acking",
				zap.String("paymentId", paymentID), zap.String("reference", detail.ExternalReference))
			return nil
		}
		return err
	}

	if ref.Kind == RefPlan {
		// One-off payments against a plan reference happen when the buyer
		// pays the first subscription charge; the preapproval event is the
		// one that activates the plan.
		logger.Info("payment references a plan; deferring to preapproval events",
			zap.String("paymentId", paymentID))
		return nil
	}

	switch detail.Status {
	case "approved":
		moved, err := r.Appointments.UpdateStatusFrom(ref.AppointmentID,
			models.StatusPendingPayment, models.StatusConfirmed, detail.ID)
		if err != nil {
			return err
		}
		if !moved {
			return r.explainUnmoved(ref.AppointmentID, detail.ID)
		}
		logger.Info("appointment confirmed by payment",
			zap.String("appointmentId", ref.AppointmentID),
			zap.String("paymentId", detail.ID),
			zap.Float64("amount", detail.TransactionAmount))
	case "rejected", "cancelled":
		moved, err := r.Appointments.UpdateStatusFrom(ref.AppointmentID,
			models.StatusPendingPayment, models.StatusCancelled, detail.ID)
		if err != nil {
			return err
		}
		if !moved {
			return r.explainUnmoved(ref.AppointmentID, detail.ID)
		}
		logger.Info("appointment cancelled by failed payment",
			zap.String("appointmentId", ref.AppointmentID),
			zap.String("paymentStatus", detail.Status))
	default:
		// in_process, pending and friends resolve with a later notification.
		logger.Info("payment status not terminal; waiting",
			zap.String("paymentId", detail.ID), zap.String("status", detail.Status))
	}
	return nil
}

// explainUnmoved resolves a conditional transition that matched nothing. If
// the appointment exists it already left pending_payment and the event is a
// duplicate or late arrival, which is an ack. If it does not exist the event
// outran the local insert; returning an error lets the gateway redeliver
// after the write lands.
func (r *Reconciler) explainUnmoved(appointmentID, paymentID string) error {
	logger := utils.GetLogger()

	appt, err := r.Appointments.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		logger.Warn("payment references an appointment not yet persisted; requesting redelivery",
			zap.String("appointmentId", appointmentID), zap.String("paymentId", paymentID))
		return fmt.Errorf("appointment %s not found for payment %s", appointmentID, paymentID)
	}
	logger.Info("payment transition already applied; ignoring duplicate",
		zap.String("appointmentId", appointmentID),
		zap.String("paymentId", paymentID),
		zap.String("status", appt.Status))
	return nil
}

func (r *Reconciler) reconcilePreapproval(ctx context.Context, preapprovalID string) error {
	logger := utils.GetLogger()

	detail, err := r.Gateway.GetPreapproval(ctx, preapprovalID)
	if err != nil {
		return err
	}

	ref, err := ParseReference(detail.ExternalReference)
	if err != nil {
		var unrec *ErrUnrecognizedReference
		if errors.As(err, &unrec) {
			logger.Warn("preapproval carries unrecognized external reference; acking",
				zap.String("preapprovalId", preapprovalID), zap.String("reference", detail.ExternalReference))
			return nil
		}
		return err
	}
	if ref.Kind != RefPlan || !PlanTypeValid(ref.PlanType) {
		logger.Warn("preapproval reference does not name a plan; acking",
			zap.String("preapprovalId", preapprovalID), zap.String("reference", detail.ExternalReference))
		return nil
	}

	switch detail.Status {
	case "authorized":
		expires := r.planExpiry(ref.PlanType)
		if err := r.Users.SetPlan(ref.UserID, true, &expires); err != nil {
			return err
		}
		logger.Info("subscription plan activated",
			zap.String("userId", ref.UserID),
			zap.String("plan", ref.PlanType),
			zap.Time("expiresAt", expires))
	case "cancelled", "paused", "pending":
		if err := r.Users.SetPlan(ref.UserID, false, nil); err != nil {
			return err
		}
		logger.Info("subscription plan deactivated",
			zap.String("userId", ref.UserID),
			zap.String("plan", ref.PlanType),
			zap.String("status", detail.Status))
	default:
		logger.Info("preapproval status not actionable; acking",
			zap.String("preapprovalId", detail.ID), zap.String("status", detail.Status))
	}
	return nil
}

func (r *Reconciler) planExpiry(planType string) time.Time {
	if planType == models.PlanAnnual {
		return r.now().AddDate(1, 0, 0)
	}
	return r.now().AddDate(0, 1, 0)
}
