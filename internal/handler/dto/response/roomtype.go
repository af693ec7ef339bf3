package response

import (
	"time"

	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomTypeResponse struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotelId"`
	HotelName          string    `json:"hotelName,omitempty"`
	Name               string    `json:"name"`
	BaseAvailability   int       `json:"baseAvailability"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	res := &RoomTypeResponse{}
	copyFrom(res, v)
	return res
}

func FromRoomTypeSnapshot(rt *shared.RoomTypeSnapshot) *RoomTypeResponse {
	res := &RoomTypeResponse{}
	copyFrom(res, rt)
	return res
}
