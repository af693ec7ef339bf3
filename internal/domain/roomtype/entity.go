package roomtype

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName              = errors.New("room type name must be 1-100 characters")
	ErrNegativeBaseAvailability = errors.New("base availability cannot be negative")
	ErrNegativePrice            = errors.New("price per night cannot be negative")
	ErrBaseAvailabilityTooLarge = errors.New("base availability too large")
	ErrPriceTooLarge            = errors.New("price per night too large")
)

const (
	maxNameLength = 100

	MaxBaseAvailability   = 10000
	MaxPricePerNightCents = math.MaxInt32
)

// RoomType is a category of rooms in a hotel sharing one inventory pool.
type RoomType struct {
	id                 uuid.UUID
	hotelID            uuid.UUID
	name               string
	baseAvailability   int
	pricePerNightCents int64
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRoomType(hotelID uuid.UUID, name string, baseAvailability int, pricePerNightCents int64) (*RoomType, error) {
	rt := &RoomType{
		id:      uuid.New(),
		hotelID: hotelID,
	}
	if err := rt.Rename(name); err != nil {
		return nil, err
	}
	if err := rt.ChangeBaseAvailability(baseAvailability); err != nil {
		return nil, err
	}
	if err := rt.ChangePrice(pricePerNightCents); err != nil {
		return nil, err
	}
	return rt, nil
}

func ReconstructRoomType(
	id, hotelID uuid.UUID,
	name string,
	baseAvailability int,
	pricePerNightCents int64,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:                 id,
		hotelID:            hotelID,
		name:               name,
		baseAvailability:   baseAvailability,
		pricePerNightCents: pricePerNightCents,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *RoomType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return ErrInvalidName
	}
	r.name = name
	return nil
}

// ChangeBaseAvailability affects only dates without an override.
func (r *RoomType) ChangeBaseAvailability(n int) error {
	if n < 0 {
		return ErrNegativeBaseAvailability
	}
	if n > MaxBaseAvailability {
		return ErrBaseAvailabilityTooLarge
	}
	r.baseAvailability = n
	return nil
}

func (r *RoomType) ChangePrice(cents int64) error {
	if cents < 0 {
		return ErrNegativePrice
	}
	if cents > MaxPricePerNightCents {
		return ErrPriceTooLarge
	}
	r.pricePerNightCents = cents
	return nil
}

func (r *RoomType) ID() uuid.UUID             { return r.id }
func (r *RoomType) HotelID() uuid.UUID        { return r.hotelID }
func (r *RoomType) Name() string              { return r.name }
func (r *RoomType) BaseAvailability() int     { return r.baseAvailability }
func (r *RoomType) PricePerNightCents() int64 { return r.pricePerNightCents }
func (r *RoomType) CreatedAt() time.Time      { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time      { return r.updatedAt }
