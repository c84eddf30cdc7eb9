package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"barberbook/config"
	"barberbook/models"

	"github.com/google/uuid"
)

// MercadoPagoClient is a thin REST client for the Mercado Pago API. Only the
// four calls the platform needs are wired; everything returns the decoded
// body or an error carrying the upstream status code.
type MercadoPagoClient struct {
	BaseURL         string
	AccessToken     string
	NotificationURL string
	HTTPClient      *http.Client
}

// NewMercadoPagoClient builds a client from the loaded configuration.
func NewMercadoPagoClient() *MercadoPagoClient {
	return &MercadoPagoClient{
		BaseURL:         strings.TrimRight(config.AppConfig.MPBaseURL, "/"),
		AccessToken:     config.AppConfig.MPAccessToken,
		NotificationURL: config.AppConfig.MPNotificationURL,
		HTTPClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

type mpBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type mpPreferenceBody struct {
	Items             []models.PreferenceItem `json:"items"`
	Payer             *mpPayer                `json:"payer,omitempty"`
	BackURLs          mpBackURLs              `json:"back_urls"`
	AutoReturn        string                  `json:"auto_return"`
	ExternalReference string                  `json:"external_reference"`
	NotificationURL   string                  `json:"notification_url,omitempty"`
}

type mpPayer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type mpAutoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequency_type"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
}

type mpPreapprovalBody struct {
	Reason            string          `json:"reason"`
	AutoRecurring     mpAutoRecurring `json:"auto_recurring"`
	BackURL           string          `json:"back_url"`
	ExternalReference string          `json:"external_reference"`
	NotificationURL   string          `json:"notification_url,omitempty"`
}

// CreatePreference registers a one-off checkout preference.
func (c *MercadoPagoClient) CreatePreference(ctx context.Context, req models.PreferenceRequest) (*models.Preference, error) {
	base := strings.TrimRight(req.RedirectBaseURL, "/")
	body := mpPreferenceBody{
		Items: req.Items,
		BackURLs: mpBackURLs{
			Success: base + "/payment-success",
			Failure: base + "/payment-failure",
			Pending: base + "/payment-pending",
		},
		AutoReturn:        "approved",
		ExternalReference: req.ExternalReference,
		NotificationURL:   c.notificationURL(req.NotificationURL),
	}
	if req.PayerName != "" || req.PayerEmail != "" {
		body.Payer = &mpPayer{Name: req.PayerName, Email: req.PayerEmail}
	}

	var pref models.Preference
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", body, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// CreatePlanPreapproval registers a recurring subscription checkout.
func (c *MercadoPagoClient) CreatePlanPreapproval(ctx context.Context, req models.PreapprovalRequest) (*models.Preference, error) {
	body := mpPreapprovalBody{
		Reason: req.Reason,
		AutoRecurring: mpAutoRecurring{
			Frequency:         req.FrequencyMonths,
			FrequencyType:     "months",
			TransactionAmount: req.Amount,
			CurrencyID:        req.Currency,
		},
		BackURL:           req.BackURL,
		ExternalReference: req.ExternalReference,
		NotificationURL:   c.notificationURL(""),
	}

	var pref models.Preference
	if err := c.do(ctx, http.MethodPost, "/preapproval", body, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// GetPayment fetches the authoritative payment record by id.
func (c *MercadoPagoClient) GetPayment(ctx context.Context, id string) (*models.PaymentDetail, error) {
	var raw struct {
		ID                json.Number `json:"id"`
		Status            string      `json:"status"`
		ExternalReference string      `json:"external_reference"`
		TransactionAmount float64     `json:"transaction_amount"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+id, nil, &raw); err != nil {
		return nil, err
	}
	return &models.PaymentDetail{
		ID:                raw.ID.String(),
		Status:            raw.Status,
		ExternalReference: raw.ExternalReference,
		TransactionAmount: raw.TransactionAmount,
	}, nil
}

// GetPreapproval fetches the authoritative subscription record by id.
func (c *MercadoPagoClient) GetPreapproval(ctx context.Context, id string) (*models.PreapprovalDetail, error) {
	var detail models.PreapprovalDetail
	if err := c.do(ctx, http.MethodGet, "/preapproval/"+id, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *MercadoPagoClient) notificationURL(override string) string {
	if override != "" {
		return override
	}
	return c.NotificationURL
}

func (c *MercadoPagoClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("mercadopago %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mercadopago %s %s: status %d: %s", method, path, resp.StatusCode, string(snippet))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
