package converter

import (
	"fmt"
	"math"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/roomtype"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	rooms := b.NumberOfRooms()
	if rooms > math.MaxInt32 {
		panic(fmt.Sprintf("number of rooms out of int32 range: %d", rooms))
	}

	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		RoomTypeID:      b.RoomTypeID(),
		GuestID:         b.GuestID(),
		CheckInDate:     pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOutDate:    pgconv.DateToPgtype(b.Stay().CheckOut()),
		NumberOfRooms:   int32(rooms),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
	}
}

func RoomTypeToInfra(rt *roomtype.RoomType) sqlc.CreateRoomTypeParams {
	return sqlc.CreateRoomTypeParams{
		ID:                 rt.ID(),
		HotelID:            rt.HotelID(),
		Name:               rt.Name(),
		BaseAvailability:   mustInt32(int64(rt.BaseAvailability()), "base availability"),
		PricePerNightCents: mustInt32(rt.PricePerNightCents(), "price per night"),
	}
}

func RoomTypeUpdateToInfra(rt *roomtype.RoomType) sqlc.UpdateRoomTypeParams {
	p := RoomTypeToInfra(rt)
	return sqlc.UpdateRoomTypeParams{
		ID:                 p.ID,
		Name:               p.Name,
		BaseAvailability:   p.BaseAvailability,
		PricePerNightCents: p.PricePerNightCents,
	}
}

func mustInt32(v int64, field string) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("%s out of int32 range: %d", field, v))
	}
	return int32(v)
}
