package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Paystack REST client. Amounts are in kobo (naira * 100).
// api.paystack.co is an opaque collaborator: we initialize a transaction,
// redirect the customer to the returned authorization URL and later verify
// the charge by reference.

var Paystack PaystackClient

type PaystackClient struct {
	SecretKey string
	BaseURL   string
	HTTP      *http.Client
}

// InitPaystack configures the shared client with the secret key.
func InitPaystack(secretKey string) {
	Paystack = PaystackClient{
		SecretKey: secretKey,
		BaseURL:   "https://api.paystack.co",
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyResult struct {
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Channel   string  `json:"channel"`
	PaidAt    string  `json:"paid_at"`
}

// Success reports whether the verified charge actually settled.
func (v *VerifyResult) Success() bool {
	return v.Status == "success"
}

// InitializePayment starts a transaction and returns the redirect target.
func (p *PaystackClient) InitializePayment(email string, amountKobo int64, reference, callbackURL string) (*InitializeResult, error) {
	payload := map[string]any{
		"email":     email,
		"amount":    amountKobo,
		"reference": reference,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	var out InitializeResult
	if err := p.call(http.MethodPost, "/transaction/initialize", payload, &out); err != nil {
		return nil, err
	}
	if out.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack: initialize returned no authorization_url")
	}
	return &out, nil
}

// VerifyPayment fetches the settlement state for a reference.
func (p *PaystackClient) VerifyPayment(reference string) (*VerifyResult, error) {
	var out VerifyResult
	if err := p.call(http.MethodGet, "/transaction/verify/"+reference, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *PaystackClient) call(method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, p.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("paystack: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("paystack: unexpected response shape: %w", err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		return fmt.Errorf("paystack: %s", envelope.Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("paystack: response missing data")
	}
	return sonic.Unmarshal(envelope.Data, out)
}
