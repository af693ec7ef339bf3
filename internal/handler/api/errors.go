package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-availability/internal/handler/httperr"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/queries"
)

var (
	errMissingActor          = errs.New("authenticated actor missing from context")
	errMissingRefreshToken   = errs.New("missing refresh token")
	errMissingIdempotencyKey = errs.New("Idempotency-Key header is required")
	errInvalidIdempotencyKey = errs.New("Idempotency-Key must be a UUID")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// checked in order; first match wins
var usecaseErrors = []errorMapping{
	{target: commands.ErrForbidden, status: http.StatusForbidden, message: "Forbidden"},
	{target: queries.ErrBookingAccessDenied, status: http.StatusForbidden, message: "Forbidden"},
	{target: queries.ErrRoomTypeAccess, status: http.StatusForbidden, message: "Forbidden"},

	{target: commands.ErrRoomTypeNotFound, status: http.StatusNotFound, message: "Room type not found"},
	{target: queries.ErrRoomTypeNotFound, status: http.StatusNotFound, message: "Room type not found"},
	{target: commands.ErrHotelNotFound, status: http.StatusNotFound, message: "Hotel not found"},
	{target: commands.ErrBookingNotFound, status: http.StatusNotFound, message: "Booking not found"},
	{target: queries.ErrBookingNotFound, status: http.StatusNotFound, message: "Booking not found"},

	{target: commands.ErrInvalidAvailabilityUpdate, status: http.StatusBadRequest, message: "Invalid availability update"},
	{target: queries.ErrInvalidDateRange, status: http.StatusBadRequest, message: "startDate must be before endDate"},
	{target: queries.ErrDateRangeTooLarge, status: http.StatusBadRequest, message: "Date range too large"},
	{target: queries.ErrInvalidCursor, status: http.StatusBadRequest, message: "Invalid cursor"},

	{target: commands.ErrInvalidBooking, status: http.StatusUnprocessableEntity, message: "Invalid booking"},
	{target: commands.ErrInvalidRoomType, status: http.StatusUnprocessableEntity, message: "Invalid room type"},

	{target: commands.ErrInsufficientAvailability, status: http.StatusConflict, message: "Insufficient availability"},
	{target: commands.ErrInvalidTransition, status: http.StatusConflict, message: "Invalid status transition"},
	{target: commands.ErrRoomTypeNameTaken, status: http.StatusConflict, message: "Room type name already exists"},
	{target: commands.ErrIdempotencyKeyReused, status: http.StatusConflict, message: "Duplicate request with different parameters"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
