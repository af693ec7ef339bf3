package request

import (
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomTypeID    uuid.UUID `json:"roomTypeId" binding:"required"`
	CheckInDate   string    `json:"checkInDate" binding:"required,calendar_date"`
	CheckOutDate  string    `json:"checkOutDate" binding:"required,calendar_date"`
	NumberOfRooms int       `json:"numberOfRooms" binding:"required,min=1"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := calendar.Parse(r.CheckInDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := calendar.Parse(r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		RoomTypeID:    r.RoomTypeID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		NumberOfRooms: r.NumberOfRooms,
	}, nil
}

type ListBookingsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}

type BookingsForDateQuery struct {
	Date string `form:"date" binding:"required,calendar_date"`
}

func (q *BookingsForDateQuery) ParseDate() (calendar.Date, error) {
	return calendar.Parse(q.Date)
}
