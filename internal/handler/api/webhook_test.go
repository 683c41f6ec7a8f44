//go:build unit

package api_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"clinic-booking/internal/handler/api"
	"clinic-booking/internal/infra/paygate"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/tests/common/httptest"
	commandsmock "clinic-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "test-webhook-secret"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)

	verifier := paygate.NewClient(config.PaymentConfig{
		BaseURL:       "http://unused",
		APIKey:        "unused",
		WebhookSecret: webhookSecret,
		Timeout:       time.Second,
	})
	s.handler = api.NewWebhookHandler(s.mockCommands, verifier)

	s.router.POST("/payments/webhook", s.handler.HandlePayment)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) signedBody(payload map[string]string) ([]byte, map[string]string) {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	return body, map[string]string{paygate.SignatureHeader: sig}
}

func (s *WebhookHandlerTestSuite) TestHandlePayment() {
	url := "/payments/webhook"
	delivery := map[string]string{
		"transaction_ref": "txn_abc",
		"outcome":         "succeeded",
		"event_id":        "evt_1",
	}

	s.Run("success: first delivery is applied", func() {
		body, headers := s.signedBody(delivery)
		s.mockCommands.EXPECT().
			ConfirmPayment(gomock.Any(), "txn_abc", commands.OutcomeSucceeded).
			Return(&commands.ConfirmResult{}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("applied", resp["status"])
	})

	s.Run("success: replay is acknowledged as already applied", func() {
		body, headers := s.signedBody(delivery)
		s.mockCommands.EXPECT().
			ConfirmPayment(gomock.Any(), "txn_abc", commands.OutcomeSucceeded).
			Return(&commands.ConfirmResult{AlreadyApplied: true}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("already_applied", resp["status"])
	})

	s.Run("error: 401 without signature", func() {
		body, _ := s.signedBody(delivery)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "signature")
	})

	s.Run("error: 401 on tampered body", func() {
		_, headers := s.signedBody(delivery)
		tampered := []byte(`{"transaction_ref":"txn_abc","outcome":"failed"}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, tampered, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "signature")
	})

	s.Run("error: 400 on missing fields", func() {
		body, headers := s.signedBody(map[string]string{"outcome": "succeeded"})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on unknown outcome", func() {
		body, headers := s.signedBody(map[string]string{
			"transaction_ref": "txn_abc",
			"outcome":         "exploded",
		})
		s.mockCommands.EXPECT().
			ConfirmPayment(gomock.Any(), "txn_abc", commands.PaymentOutcome("exploded")).
			Return(nil, errs.ErrInvalidOutcome)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "outcome")
	})

	s.Run("error: 404 on unknown transaction ref", func() {
		body, headers := s.signedBody(delivery)
		s.mockCommands.EXPECT().
			ConfirmPayment(gomock.Any(), "txn_abc", commands.OutcomeSucceeded).
			Return(nil, errs.ErrObligationNotFound)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "transaction")
	})
}
