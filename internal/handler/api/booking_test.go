//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"clinic-booking/internal/domain/user"
	"clinic-booking/internal/handler/api"
	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/tests/common/httptest"
	commandsmock "clinic-booking/tests/mock/commands"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleRequester

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.ClaimSlot)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestClaimSlot
// ================================================================================

func (s *BookingHandlerTestSuite) TestClaimSlot() {
	url := "/bookings"
	reqBody := reqdto.ClaimSlotRequest{ProviderID: uuid.New(), SlotID: uuid.New()}

	s.Run("success: returns 201 with booking ID and payment URL", func() {
		result := &commands.ClaimResult{BookingID: uuid.New(), PaymentURL: "https://pay.example.com/sess_1"}
		s.mockCommands.EXPECT().
			Claim(gomock.Any(), s.actorID, reqBody.ProviderID, reqBody.SlotID).
			Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.BookingID, body.BookingID)
		s.Equal(result.PaymentURL, body.PaymentURL)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"provider_id": reqBody.ProviderID}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the slot was claimed first", func() {
		s.mockCommands.EXPECT().
			Claim(gomock.Any(), s.actorID, reqBody.ProviderID, reqBody.SlotID).
			Return(nil, errs.ErrSlotAlreadyBooked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "claimed by another booking")
	})

	s.Run("error: 409 when the slot already started", func() {
		s.mockCommands.EXPECT().
			Claim(gomock.Any(), s.actorID, reqBody.ProviderID, reqBody.SlotID).
			Return(nil, errs.ErrSlotInPast)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already passed")
	})

	s.Run("error: 404 when the provider does not exist", func() {
		s.mockCommands.EXPECT().
			Claim(gomock.Any(), s.actorID, reqBody.ProviderID, reqBody.SlotID).
			Return(nil, errs.ErrProviderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Provider not found")
	})

	s.Run("error: 502 when the gateway is down", func() {
		s.mockCommands.EXPECT().
			Claim(gomock.Any(), s.actorID, reqBody.ProviderID, reqBody.SlotID).
			Return(nil, errs.ErrPaymentGateway)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "rolled back")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	view := &queries.BookingView{
		ID:             bookingID,
		RequesterID:    s.actorID,
		RequesterEmail: "requester@example.com",
		ProviderID:     uuid.New(),
		ProviderName:   "Dr. Example",
		SlotID:         uuid.New(),
		SlotStart:      now.Add(time.Hour),
		SlotEnd:        now.Add(90 * time.Minute),
		Status:         "PENDING",
		PaymentStatus:  "UNPAID",
		AmountCents:    5000,
		TransactionRef: "txn_abc",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.Run("success: returns 200 with the booking view", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), queries.Actor{ID: s.actorID, Role: s.actorRole}, bookingID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.ProviderName, body.ProviderName)
		s.Equal(view.AmountCents, body.AmountCents)
	})

	s.Run("error: 404 for invisible booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	items := []*queries.BookingListItem{
		{ID: uuid.New(), ProviderName: "Dr. Example", Status: "CONFIRMED", PaymentStatus: "PAID", AmountCents: 5000},
	}

	s.Run("success: requester sees own bookings", func() {
		s.actorRole = user.RoleRequester
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.actorID, 0).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(items[0].ID, body[0].ID)
	})

	s.Run("success: provider sees received bookings", func() {
		s.actorRole = user.RoleProvider
		s.mockQueries.EXPECT().ListByProvider(gomock.Any(), s.actorID, 0).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: admin lists with filters", func() {
		s.actorRole = user.RoleAdmin
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.Actor{ID: s.actorID, Role: user.RoleAdmin}, gomock.Any(), 10).
			DoAndReturn(func(_ any, _ queries.Actor, filters queries.BookingFilters, _ int) ([]*queries.BookingListItem, error) {
				s.Require().NotNil(filters.Status)
				s.Equal("PENDING", *filters.Status)
				return items, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=PENDING&limit=10", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 on bad limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on bad admin filter", func() {
		s.actorRole = user.RoleAdmin
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?provider_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "provider_id")
	})
}

// ================================================================================
// TestCompleteBooking / TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/complete"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actorID, bookingID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for a foreign provider", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actorID, bookingID).Return(errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 409 for a pending booking", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actorID, bookingID).Return(errs.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.actorID, bookingID).Return(errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.actorRole = user.RoleProvider
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actorID, user.RoleProvider, bookingID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the booking is already final", func() {
		s.actorRole = user.RoleProvider
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actorID, user.RoleProvider, bookingID).Return(errs.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition")
	})
}
