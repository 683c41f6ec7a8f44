package request

// PaymentWebhookRequest is the processor's delivery body. The signature
// travels in the X-Payment-Signature header over the raw bytes.
type PaymentWebhookRequest struct {
	TransactionRef string `json:"transaction_ref" binding:"required"`
	Outcome        string `json:"outcome" binding:"required"`
	EventID        string `json:"event_id,omitempty"`
}
