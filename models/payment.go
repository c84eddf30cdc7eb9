package models

// WebhookEvent is the inbound gateway notification envelope. Only the event
// id is trusted; everything else is re-fetched from the gateway.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Gateway event types the reconciler acts on. Anything else is acked and
// ignored.
const (
	EventPayment     = "payment"
	EventPreapproval = "preapproval"
)

// PreferenceItem is one line of a checkout preference.
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency_id"`
}

// PreferenceRequest asks the gateway for a one-off checkout.
type PreferenceRequest struct {
	Items             []PreferenceItem
	PayerName         string
	PayerEmail        string
	ExternalReference string
	RedirectBaseURL   string
	NotificationURL   string
}

// Preference is the gateway's checkout handle.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PreapprovalRequest asks the gateway for a recurring subscription checkout.
type PreapprovalRequest struct {
	Reason            string
	FrequencyMonths   int
	Amount            float64
	Currency          string
	BackURL           string
	ExternalReference string
}

// PaymentDetail is the authoritative payment record fetched by id.
type PaymentDetail struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
}

// PreapprovalDetail is the authoritative subscription record fetched by id.
type PreapprovalDetail struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}
