package paygate

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
)

// SignatureHeader carries the HMAC-SHA256 hex digest of the webhook body.
const SignatureHeader = "X-Payment-Signature"

// Client talks to the checkout-session API of the payment processor. The
// session is created after the booking transaction commits; a failure here
// triggers the caller's compensation path, never a dangling charge.
type Client struct {
	http          *http.Client
	baseURL       string
	apiKey        string
	webhookSecret []byte
	successURL    string
	cancelURL     string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		http:          &http.Client{Timeout: cfg.Timeout},
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		webhookSecret: []byte(cfg.WebhookSecret),
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

type sessionPayload struct {
	AmountCents    int64             `json:"amount_cents"`
	Currency       string            `json:"currency"`
	TransactionRef string            `json:"transaction_ref"`
	SuccessURL     string            `json:"success_url"`
	CancelURL      string            `json:"cancel_url"`
	CustomerEmail  string            `json:"customer_email,omitempty"`
	Metadata       map[string]string `json:"metadata"`
}

type sessionResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

func (c *Client) CreateSession(ctx context.Context, req commands.SessionRequest) (*commands.SessionResult, error) {
	payload := sessionPayload{
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		TransactionRef: req.TransactionRef,
		SuccessURL:     c.successURL,
		CancelURL:      c.cancelURL,
		CustomerEmail:  req.CustomerEmail,
		Metadata: map[string]string{
			"booking_id":    req.BookingID.String(),
			"obligation_id": req.ObligationID.String(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode session payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build session request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "payment gateway unreachable"), errs.ErrPaymentGateway)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read gateway response"), errs.ErrPaymentGateway)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("payment gateway returned status %d", resp.StatusCode)),
			errs.ErrPaymentGateway)
	}

	var sess sessionResponse
	if err := json.Unmarshal(respBody, &sess); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode gateway response"), errs.ErrPaymentGateway)
	}
	if sess.RedirectURL == "" {
		return nil, errs.Mark(errs.New("gateway response missing redirect URL"), errs.ErrPaymentGateway)
	}

	return &commands.SessionResult{
		SessionID:   sess.SessionID,
		RedirectURL: sess.RedirectURL,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 hex digest the processor attaches to
// webhook deliveries. Comparison is constant-time.
func (c *Client) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, c.webhookSecret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
