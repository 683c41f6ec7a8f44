package api

import (
	"errors"
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
	}
}

// @Summary Generate slots
// @Description Expand a date range and daily window into bookable slots
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateSlotsRequest true "Generation request"
// @Success 201 {object} resdto.GenerateSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /schedules [post]
func (h *ScheduleHandler) GenerateSlots(c *gin.Context) {
	var req reqdto.GenerateSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time format", nil)
		return
	}

	result, err := h.scheduleCommands.Generate(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotRecords(result.Requested, result.Created))
}
