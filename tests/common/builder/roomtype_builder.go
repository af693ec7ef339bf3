//go:build unit || e2e

package builder

import (
	"time"

	"hotel-availability/internal/domain/roomtype"
	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	HotelOwnerID       uuid.UUID
	Name               string
	BaseAvailability   int
	PricePerNightCents int64
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		HotelOwnerID:       uuid.New(),
		Name:               "Deluxe Twin",
		BaseAvailability:   10,
		PricePerNightCents: 15000,
	}
}

func (r *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(r)
	return r
}

func (r *RoomTypeBuilder) BuildDomain() (*roomtype.RoomType, error) {
	return roomtype.NewRoomType(r.HotelID, r.Name, r.BaseAvailability, r.PricePerNightCents)
}

func (r *RoomTypeBuilder) BuildSnapshot() shared.RoomTypeSnapshot {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	return shared.RoomTypeSnapshot{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		HotelOwnerID:       r.HotelOwnerID,
		Name:               r.Name,
		BaseAvailability:   r.BaseAvailability,
		PricePerNightCents: r.PricePerNightCents,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (r *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	snap := r.BuildSnapshot()
	return &queries.RoomTypeView{
		ID:                 snap.ID,
		HotelID:            snap.HotelID,
		HotelName:          "Harbor View Hotel",
		HotelOwnerID:       snap.HotelOwnerID,
		Name:               snap.Name,
		BaseAvailability:   snap.BaseAvailability,
		PricePerNightCents: snap.PricePerNightCents,
		CreatedAt:          snap.CreatedAt,
		UpdatedAt:          snap.UpdatedAt,
	}
}

func (r *RoomTypeBuilder) WithOwner(ownerID uuid.UUID) *RoomTypeBuilder {
	r.HotelOwnerID = ownerID
	return r
}

func (r *RoomTypeBuilder) WithName(name string) *RoomTypeBuilder {
	r.Name = name
	return r
}

func (r *RoomTypeBuilder) WithBaseAvailability(n int) *RoomTypeBuilder {
	r.BaseAvailability = n
	return r
}

func (r *RoomTypeBuilder) WithPricePerNightCents(cents int64) *RoomTypeBuilder {
	r.PricePerNightCents = cents
	return r
}
