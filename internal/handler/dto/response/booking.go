package response

import (
	"time"

	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID     `json:"id"`
	RoomTypeID      uuid.UUID     `json:"roomTypeId"`
	RoomTypeName    string        `json:"roomTypeName,omitempty"`
	HotelID         uuid.UUID     `json:"hotelId,omitempty"`
	GuestID         uuid.UUID     `json:"guestId"`
	GuestEmail      string        `json:"guestEmail,omitempty"`
	CheckInDate     calendar.Date `json:"checkInDate"`
	CheckOutDate    calendar.Date `json:"checkOutDate"`
	NumberOfRooms   int           `json:"numberOfRooms"`
	Status          string        `json:"status"`
	TotalPriceCents int64         `json:"totalPriceCents"`
	CancelledBy     *string       `json:"cancelledBy,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	copyFrom(res, v)
	return res
}

func FromBookingSnapshot(b *shared.BookingSnapshot) *BookingResponse {
	res := &BookingResponse{
		ID:              b.ID,
		RoomTypeID:      b.RoomTypeID,
		GuestID:         b.GuestID,
		GuestEmail:      b.GuestEmail,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		NumberOfRooms:   b.NumberOfRooms,
		Status:          b.Status.String(),
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.CancelledBy != nil {
		reason := b.CancelledBy.String()
		res.CancelledBy = &reason
	}
	return res
}

type BookingListItemResponse struct {
	ID              uuid.UUID     `json:"id"`
	RoomTypeID      uuid.UUID     `json:"roomTypeId"`
	RoomTypeName    string        `json:"roomTypeName"`
	CheckInDate     calendar.Date `json:"checkInDate"`
	CheckOutDate    calendar.Date `json:"checkOutDate"`
	NumberOfRooms   int           `json:"numberOfRooms"`
	Status          string        `json:"status"`
	TotalPriceCents int64         `json:"totalPriceCents"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, 0, len(p.Items)), NextCursor: p.NextCursor}
	copyFrom(&res.Items, p.Items)
	return res
}

type ActiveBookingResponse struct {
	ID            uuid.UUID     `json:"id"`
	GuestID       uuid.UUID     `json:"guestId"`
	GuestEmail    string        `json:"guestEmail"`
	CheckInDate   calendar.Date `json:"checkInDate"`
	CheckOutDate  calendar.Date `json:"checkOutDate"`
	NumberOfRooms int           `json:"numberOfRooms"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func FromActiveBookings(items []*queries.ActiveBookingView) []ActiveBookingResponse {
	res := make([]ActiveBookingResponse, 0, len(items))
	copyFrom(&res, items)
	return res
}
