package payment

import (
	"context"

	"barberbook/models"
)

// Gateway is the injected payment-gateway capability. The engine never acts
// on notification payloads directly: reconciliation re-fetches the
// authoritative record by id through this interface.
type Gateway interface {
	// CreatePreference registers a one-off checkout and returns the
	// redirect handle.
	CreatePreference(ctx context.Context, req models.PreferenceRequest) (*models.Preference, error)

	// CreatePlanPreapproval registers a recurring subscription checkout.
	CreatePlanPreapproval(ctx context.Context, req models.PreapprovalRequest) (*models.Preference, error)

	// GetPayment fetches the authoritative payment record by id.
	GetPayment(ctx context.Context, id string) (*models.PaymentDetail, error)

	// GetPreapproval fetches the authoritative subscription record by id.
	GetPreapproval(ctx context.Context, id string) (*models.PreapprovalDetail, error)
}
