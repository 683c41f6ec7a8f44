package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
	availabilityQueries  queries.AvailabilityQueries
}

func NewAvailabilityHandler(
	availabilityCommands commands.AvailabilityCommands,
	availabilityQueries queries.AvailabilityQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
		availabilityQueries:  availabilityQueries,
	}
}

// @Summary Offer slots
// @Description Attach pool slots to the authenticated provider's availability
// @Tags provider-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OfferSlotsRequest true "Slot IDs to offer"
// @Success 201 {object} resdto.OfferSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /provider-slots [post]
func (h *AvailabilityHandler) OfferSlots(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	var req reqdto.OfferSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	offered, err := h.availabilityCommands.Offer(c.Request.Context(), providerID, req.SlotIDs)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNothingToOffer):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No slot IDs supplied", nil)
		case errors.Is(err, errs.ErrProviderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Provider not found", nil)
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OfferSlotsResponse{Offered: offered})
}

// @Summary List own provider slots
// @Description List the authenticated provider's offered slots
// @Tags provider-slots
// @Produce json
// @Security BearerAuth
// @Param claimed query bool false "Filter by claimed state"
// @Param from query string false "RFC3339 lower bound on slot start"
// @Param to query string false "RFC3339 upper bound on slot start"
// @Param phase query string false "upcoming or past"
// @Success 200 {array} resdto.ProviderSlotResponse
// @Router /provider-slots [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	filters, limit, err := parseAvailabilityFilters(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.availabilityQueries.ListProviderSlots(c.Request.Context(), providerID, filters, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderSlotViews(views))
}

// @Summary List open slots
// @Description List pool slots the authenticated provider has not offered yet
// @Tags provider-slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Router /provider-slots/open [get]
func (h *AvailabilityHandler) ListOpenSlots(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	filters, limit, err := parseAvailabilityFilters(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.availabilityQueries.ListOpenSlots(c.Request.Context(), providerID, filters, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOpenSlotViews(views))
}

// @Summary Withdraw a slot offer
// @Description Remove an unclaimed future slot from the provider's availability
// @Tags provider-slots
// @Produce json
// @Security BearerAuth
// @Param slotId path string true "Slot ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /provider-slots/{slotId} [delete]
func (h *AvailabilityHandler) WithdrawSlot(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("auth context missing"), "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	if err := h.availabilityCommands.Withdraw(c.Request.Context(), providerID, slotID); err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot offer not found", nil)
		case errors.Is(err, errs.ErrSlotClaimed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is claimed by a booking", nil)
		case errors.Is(err, errs.ErrSlotInPast):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot start has already passed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseAvailabilityFilters(c *gin.Context) (queries.AvailabilityFilters, int, error) {
	var filters queries.AvailabilityFilters

	if raw := c.Query("claimed"); raw != "" {
		claimed, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, 0, errors.New("invalid claimed filter")
		}
		filters.Claimed = &claimed
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, 0, errors.New("invalid from timestamp")
		}
		filters.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, 0, errors.New("invalid to timestamp")
		}
		filters.To = &to
	}

	phase := queries.Phase(c.Query("phase"))
	if !phase.IsValid() {
		return filters, 0, errors.New("invalid phase filter")
	}
	filters.Phase = phase

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return filters, 0, errors.New("invalid limit")
		}
		limit = n
	}

	return filters, limit, nil
}
