package api

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-booking/internal/domain/user"
	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Claim a slot
// @Description Atomically claim a provider slot and open a checkout session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimSlotRequest true "Claim request"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) ClaimSlot(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	var req reqdto.ClaimSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.Claim(c.Request.Context(), requesterID, req.ProviderID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequesterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Requester not found", nil)
		case errors.Is(err, errs.ErrProviderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", nil)
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrSlotInPast):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot start has already passed", nil)
		case errors.Is(err, errs.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot was claimed by another booking", nil)
		case errors.Is(err, errs.ErrPaymentGateway):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway unavailable, booking was rolled back", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ClaimResponse{
		BookingID:  result.BookingID,
		PaymentURL: result.PaymentURL,
	})
}

// @Summary Get booking
// @Description Get a booking visible to the authenticated actor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Requesters and providers see their own bookings; admins see all with filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var items []*queries.BookingListItem
	var err error
	switch actor.Role {
	case user.RoleAdmin:
		filters, filterErr := parseBookingFilters(c)
		if filterErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, filterErr, filterErr.Error(), nil)
			return
		}
		items, err = h.bookingQueries.List(c.Request.Context(), actor, filters, limit)
	case user.RoleProvider:
		items, err = h.bookingQueries.ListByProvider(c.Request.Context(), actor.ID, limit)
	default:
		items, err = h.bookingQueries.ListByRequester(c.Request.Context(), actor.ID, limit)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Complete a booking
// @Description Mark a confirmed booking as completed (owning provider only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.bookingCommands.Complete(c.Request.Context(), actor.ID, id); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel a booking
// @Description Cancel an active booking (owning provider or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), actor.ID, actor.Role, id); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed for this booking", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking state does not allow this transition", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func currentActor(c *gin.Context) (queries.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{ID: id, Role: role}, true
}

func parseBookingFilters(c *gin.Context) (queries.BookingFilters, error) {
	var filters queries.BookingFilters

	if raw := c.Query("status"); raw != "" {
		filters.Status = &raw
	}
	if raw := c.Query("payment_status"); raw != "" {
		filters.PaymentStatus = &raw
	}
	if raw := c.Query("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, errors.New("invalid provider_id filter")
		}
		filters.ProviderID = &id
	}
	if raw := c.Query("requester_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, errors.New("invalid requester_id filter")
		}
		filters.RequesterID = &id
	}

	return filters, nil
}
