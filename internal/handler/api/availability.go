package api

import (
	"net/http"

	reqdto "hotel-availability/internal/handler/dto/request"
	resdto "hotel-availability/internal/handler/dto/response"
	"hotel-availability/internal/handler/httperr"
	"hotel-availability/internal/handler/middleware"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Check availability
// @Description Effective available rooms, booked rooms and override flag per date in [startDate, endDate)
// @Tags availability
// @Produce json
// @Param id path string true "Room type ID"
// @Param startDate query string true "First date (YYYY-MM-DD)"
// @Param endDate query string true "Exclusive end date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CheckAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id}/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	roomTypeID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.CheckAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	start, end, err := query.Range()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	days, err := h.q.CheckAvailability(c.Request.Context(), roomTypeID, start, end)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailability(roomTypeID, days))
}

// @Summary Update availability
// @Description Set available rooms per date. A reduction below the booked count returns 409 with the bookings
// @Description that would be cancelled; repeat with forceCancellation=true to cancel them.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateAvailabilityRequest true "Availability updates"
// @Success 200 {object} resdto.UpdateAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.AvailabilityConflictResponse
// @Router /room-types/{id}/availability [post]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	roomTypeID, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput(roomTypeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.UpdateAvailability(c.Request.Context(), actor, input)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if result.Conflict != nil {
		c.JSON(http.StatusConflict, resdto.FromAvailabilityConflict(result.Conflict, result.Conflicts))
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateResults(result.Results))
}
