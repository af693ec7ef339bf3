package queries

import (
	"time"

	"hotel-availability/internal/domain/calendar"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RoomTypeView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	HotelOwnerID       uuid.UUID `json:"hotel_owner_id"`
	Name               string    `json:"name"`
	BaseAvailability   int       `json:"base_availability"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DayAvailabilityView is the inventory state of one room type on one date.
type DayAvailabilityView struct {
	Date           calendar.Date `json:"date"`
	AvailableRooms int           `json:"available_rooms"`
	BookedRooms    int           `json:"booked_rooms"`
	IsManuallySet  bool          `json:"is_manually_set"`
}

type OverrideView struct {
	Date           calendar.Date
	AvailableRooms int
	IsManuallySet  bool
}

type BookingView struct {
	ID              uuid.UUID     `json:"id"`
	RoomTypeID      uuid.UUID     `json:"room_type_id"`
	RoomTypeName    string        `json:"room_type_name"`
	HotelID         uuid.UUID     `json:"hotel_id"`
	HotelOwnerID    uuid.UUID     `json:"hotel_owner_id"`
	GuestID         uuid.UUID     `json:"guest_id"`
	GuestEmail      string        `json:"guest_email"`
	CheckInDate     calendar.Date `json:"check_in_date"`
	CheckOutDate    calendar.Date `json:"check_out_date"`
	NumberOfRooms   int           `json:"number_of_rooms"`
	Status          string        `json:"status"`
	TotalPriceCents int64         `json:"total_price_cents"`
	CancelledBy     *string       `json:"cancelled_by,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID     `json:"id"`
	RoomTypeID      uuid.UUID     `json:"room_type_id"`
	RoomTypeName    string        `json:"room_type_name"`
	CheckInDate     calendar.Date `json:"check_in_date"`
	CheckOutDate    calendar.Date `json:"check_out_date"`
	NumberOfRooms   int           `json:"number_of_rooms"`
	Status          string        `json:"status"`
	TotalPriceCents int64         `json:"total_price_cents"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ActiveBookingView is a pending or confirmed booking occupying a given date.
type ActiveBookingView struct {
	ID            uuid.UUID     `json:"id"`
	GuestID       uuid.UUID     `json:"guest_id"`
	GuestEmail    string        `json:"guest_email"`
	CheckInDate   calendar.Date `json:"check_in_date"`
	CheckOutDate  calendar.Date `json:"check_out_date"`
	NumberOfRooms int           `json:"number_of_rooms"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
