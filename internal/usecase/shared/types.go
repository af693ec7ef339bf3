package shared

import (
	"time"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) CanManageHotel(ownerID uuid.UUID) bool {
	return user.CanManageHotel(a.UserID, a.Role, ownerID)
}

type HotelSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type RoomTypeSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	HotelOwnerID       uuid.UUID
	Name               string
	BaseAvailability   int
	PricePerNightCents int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BookingSnapshot struct {
	ID              uuid.UUID
	RoomTypeID      uuid.UUID
	HotelOwnerID    uuid.UUID
	GuestID         uuid.UUID
	GuestEmail      string
	CheckIn         calendar.Date
	CheckOut        calendar.Date
	NumberOfRooms   int
	Status          booking.Status
	TotalPriceCents int64
	CancelledBy     *booking.CancelReason
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"

	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

const (
	NotificationKindEmail = "email"

	NotificationTopicBookingCreated   = "booking_created"
	NotificationTopicBookingConfirmed = "booking_confirmed"
	NotificationTopicBookingCancelled = "booking_cancelled"
)

// BookingNotification is the payload of booking notification jobs.
type BookingNotification struct {
	BookingID     uuid.UUID `json:"booking_id"`
	RoomTypeID    uuid.UUID `json:"room_type_id"`
	GuestEmail    string    `json:"guest_email"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	NumberOfRooms int       `json:"number_of_rooms"`
	Status        string    `json:"status"`
	CancelledBy   string    `json:"cancelled_by,omitempty"`
}
