package establishment

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/payment"
	"barberbook/utils"

	"go.uber.org/zap"
)

// InitiateSubscription opens a recurring checkout for the owner's plan. The
// external reference names the plan cycle and owner so the preapproval
// notification can activate the right account.
func (s *DefaultEstablishmentService) InitiateSubscription(ownerID, planType, backURL string) (string, error) {
	owner, err := s.Users.GetByID(ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch owner account: %w", err)
	}
	if owner == nil || owner.Role != models.RoleEstablishment {
		return "", fmt.Errorf("subscriptions are only available to establishment owners")
	}

	var amount float64
	var frequency int
	switch planType {
	case models.PlanMonthly:
		amount = s.MonthlyPlanPrice
		frequency = 1
	case models.PlanAnnual:
		amount = s.AnnualPlanPrice
		frequency = 12
	default:
		return "", fmt.Errorf("unknown plan type %q", planType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pref, err := s.Gateway.CreatePlanPreapproval(ctx, models.PreapprovalRequest{
		Reason:            fmt.Sprintf("Barberbook plano %s", planType),
		FrequencyMonths:   frequency,
		Amount:            amount,
		Currency:          "BRL",
		BackURL:           backURL,
		ExternalReference: payment.PlanReference(planType, ownerID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subscription checkout: %w", err)
	}

	utils.GetLogger().Info("subscription checkout created",
		zap.String("ownerId", ownerID),
		zap.String("plan", planType),
		zap.Float64("amount", amount))

	return pref.InitPoint, nil
}

// DeactivateExpiredPlans flips planActive off for owners past their expiry.
// The background worker calls this on a schedule.
func (s *DefaultEstablishmentService) DeactivateExpiredPlans() (int64, error) {
	n, err := s.Users.DeactivateExpiredPlans(time.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		utils.GetLogger().Info("deactivated expired plans", zap.Int64("count", n))
	}
	return n, nil
}
