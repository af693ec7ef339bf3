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

type RoomTypeHandler struct {
	cmds     commands.RoomTypeCommands
	q        queries.RoomTypeQueries
	bookings queries.BookingQueries
}

func NewRoomTypeHandler(cmds commands.RoomTypeCommands, q queries.RoomTypeQueries, bookings queries.BookingQueries) *RoomTypeHandler {
	return &RoomTypeHandler{cmds: cmds, q: q, bookings: bookings}
}

// @Summary Get room type
// @Tags room-types
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetRoomType(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Create room type
// @Description Create a room type in a hotel owned by the caller
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/room-types [post]
func (h *RoomTypeHandler) Create(c *gin.Context) {
	hotelID, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateRoomTypeInput{
		HotelID:            hotelID,
		Name:               req.Name,
		BaseAvailability:   *req.BaseAvailability,
		PricePerNightCents: req.PricePerNightCents,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/room-types/"+created.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRoomTypeSnapshot(created))
}

// @Summary Update base availability
// @Description Existing overrides and bookings are left untouched
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "New base availability"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [patch]
func (h *RoomTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.cmds.UpdateBaseAvailability(c.Request.Context(), actor, id, *req.BaseAvailability)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeSnapshot(updated))
}

// @Summary Bookings on a date
// @Description Pending and confirmed bookings occupying the room type on the given night
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param date query string true "Night (YYYY-MM-DD)"
// @Success 200 {array} resdto.ActiveBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id}/bookings [get]
func (h *RoomTypeHandler) BookingsOnDate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var query reqdto.BookingsForDateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	date, err := query.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.bookings.ListBookingsForDate(c.Request.Context(), actor, id, date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActiveBookings(items))
}
