package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/infra/paygate"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SignatureVerifier checks the processor's HMAC over the raw delivery body.
type SignatureVerifier interface {
	VerifySignature(body []byte, signature string) bool
}

type WebhookHandler struct {
	paymentCommands commands.PaymentCommands
	verifier        SignatureVerifier
}

func NewWebhookHandler(paymentCommands commands.PaymentCommands, verifier SignatureVerifier) *WebhookHandler {
	return &WebhookHandler{
		paymentCommands: paymentCommands,
		verifier:        verifier,
	}
}

// @Summary Payment webhook
// @Description Signature-verified payment outcome delivery; replays are acknowledged without side effects
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "HMAC-SHA256 hex digest of the body"
// @Param request body reqdto.PaymentWebhookRequest true "Delivery body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *WebhookHandler) HandlePayment(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	signature := c.GetHeader(paygate.SignatureHeader)
	if signature == "" || !h.verifier.VerifySignature(body, signature) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("webhook signature mismatch"), "Invalid webhook signature", nil)
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil || req.TransactionRef == "" || req.Outcome == "" {
		if err == nil {
			err = errs.New("missing transaction_ref or outcome")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.paymentCommands.ConfirmPayment(c.Request.Context(), req.TransactionRef, commands.PaymentOutcome(req.Outcome))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObligationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown transaction reference", nil)
		case errors.Is(err, errs.ErrInvalidOutcome):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment outcome", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	status := "applied"
	if result.AlreadyApplied {
		status = "already_applied"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
