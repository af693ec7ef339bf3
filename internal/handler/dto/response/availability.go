package response

import (
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type DayAvailabilityResponse struct {
	Date           calendar.Date `json:"date"`
	AvailableRooms int           `json:"availableRooms"`
	BookedRooms    int           `json:"bookedRooms"`
	IsManuallySet  bool          `json:"isManuallySet"`
}

type CheckAvailabilityResponse struct {
	RoomTypeID uuid.UUID                 `json:"roomTypeId"`
	Days       []DayAvailabilityResponse `json:"days"`
}

func FromDayAvailability(roomTypeID uuid.UUID, days []queries.DayAvailabilityView) *CheckAvailabilityResponse {
	res := &CheckAvailabilityResponse{RoomTypeID: roomTypeID, Days: make([]DayAvailabilityResponse, 0, len(days))}
	copyFrom(&res.Days, days)
	return res
}

type DateResultResponse struct {
	Date              calendar.Date `json:"date"`
	AvailableRooms    int           `json:"availableRooms"`
	CancelledBookings int           `json:"cancelledBookings"`
}

type UpdateAvailabilityResponse struct {
	Results []DateResultResponse `json:"results"`
}

func FromUpdateResults(results []commands.DateResult) *UpdateAvailabilityResponse {
	res := &UpdateAvailabilityResponse{Results: make([]DateResultResponse, 0, len(results))}
	copyFrom(&res.Results, results)
	return res
}

type AffectedBookingResponse struct {
	ID            uuid.UUID     `json:"id"`
	GuestID       uuid.UUID     `json:"guestId"`
	CheckInDate   calendar.Date `json:"checkInDate"`
	CheckOutDate  calendar.Date `json:"checkOutDate"`
	NumberOfRooms int           `json:"numberOfRooms"`
	Status        string        `json:"status"`
}

type ConflictDetailResponse struct {
	Date                  calendar.Date             `json:"date"`
	RequestedAvailability int                       `json:"requestedAvailability"`
	ExistingBookings      int                       `json:"existingBookings"`
	AffectedBookings      []AffectedBookingResponse `json:"affectedBookings"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// AvailabilityConflictResponse flattens the first conflict into the top level
// and lists every conflicting date under Conflicts.
type AvailabilityConflictResponse struct {
	Error errorMessage `json:"error"`
	ConflictDetailResponse
	Conflicts []ConflictDetailResponse `json:"conflicts"`
}

func FromAvailabilityConflict(first *commands.AvailabilityConflict, all []commands.AvailabilityConflict) *AvailabilityConflictResponse {
	res := &AvailabilityConflictResponse{
		Error:                  errorMessage{Message: "Availability conflict"},
		ConflictDetailResponse: toConflictDetail(*first),
		Conflicts:              make([]ConflictDetailResponse, 0, len(all)),
	}
	for _, c := range all {
		res.Conflicts = append(res.Conflicts, toConflictDetail(c))
	}
	return res
}

func toConflictDetail(c commands.AvailabilityConflict) ConflictDetailResponse {
	affected := make([]AffectedBookingResponse, 0, len(c.AffectedBookings))
	for _, b := range c.AffectedBookings {
		affected = append(affected, toAffectedBooking(b))
	}
	return ConflictDetailResponse{
		Date:                  c.Date,
		RequestedAvailability: c.RequestedAvailability,
		ExistingBookings:      c.ExistingBookings,
		AffectedBookings:      affected,
	}
}

func toAffectedBooking(b shared.BookingSnapshot) AffectedBookingResponse {
	return AffectedBookingResponse{
		ID:            b.ID,
		GuestID:       b.GuestID,
		CheckInDate:   b.CheckIn,
		CheckOutDate:  b.CheckOut,
		NumberOfRooms: b.NumberOfRooms,
		Status:        b.Status.String(),
	}
}
