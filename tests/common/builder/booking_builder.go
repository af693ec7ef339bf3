//go:build unit || e2e

package builder

import (
	"time"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	reqdto "hotel-availability/internal/handler/dto/request"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomTypeID         uuid.UUID
	GuestID            uuid.UUID
	CheckIn            calendar.Date
	CheckOut           calendar.Date
	Rooms              int
	PricePerNightCents int64
	Now                time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomTypeID:         uuid.New(),
		GuestID:            uuid.New(),
		CheckIn:            calendar.MustParse("2024-03-15"),
		CheckOut:           calendar.MustParse("2024-03-17"),
		Rooms:              1,
		PricePerNightCents: 10000,
		Now:                time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	services := &booking.Services{Clock: clock.NewMockClock(b.Now)}
	return booking.NewBooking(services, booking.RoomTypeSpec{
		ID:                 b.RoomTypeID,
		PricePerNightCents: b.PricePerNightCents,
	}, b.GuestID, stay, b.Rooms)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomTypeID:    b.RoomTypeID,
		CheckInDate:   b.CheckIn.String(),
		CheckOutDate:  b.CheckOut.String(),
		NumberOfRooms: b.Rooms,
	}
}

// BuildSnapshot returns a pending booking as the commands layer reports it.
func (b *BookingBuilder) BuildSnapshot() shared.BookingSnapshot {
	nights := int64(b.CheckIn.DaysUntil(b.CheckOut))
	return shared.BookingSnapshot{
		ID:              uuid.New(),
		RoomTypeID:      b.RoomTypeID,
		GuestID:         b.GuestID,
		GuestEmail:      "guest@example.com",
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		NumberOfRooms:   b.Rooms,
		Status:          booking.StatusPending,
		TotalPriceCents: nights * int64(b.Rooms) * b.PricePerNightCents,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *BookingBuilder) WithRoomType(id uuid.UUID) *BookingBuilder {
	b.RoomTypeID = id
	return b
}

func (b *BookingBuilder) WithGuest(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

// WithStay takes YYYY-MM-DD strings and panics on malformed input.
func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = calendar.MustParse(checkIn)
	b.CheckOut = calendar.MustParse(checkOut)
	return b
}

func (b *BookingBuilder) WithRooms(n int) *BookingBuilder {
	b.Rooms = n
	return b
}

func (b *BookingBuilder) WithPricePerNightCents(cents int64) *BookingBuilder {
	b.PricePerNightCents = cents
	return b
}
