package booking

import (
	"errors"
	"time"

	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomCount        = errors.New("number of rooms must be at least 1")
	ErrCheckInInPast           = errors.New("check-in date cannot be in the past")
	ErrInvalidGuest            = errors.New("guest is required")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrInvalidCancelReason     = errors.New("invalid cancel reason")
	ErrCompletedBeforeCheckout = errors.New("booking cannot be completed before check-out date")
)

type RoomTypeSpec struct {
	ID                 uuid.UUID
	PricePerNightCents int64
}

type Services struct {
	Clock clock.Clock
}

type Booking struct {
	id          uuid.UUID
	roomTypeID  uuid.UUID
	guestID     uuid.UUID
	stay        Stay
	rooms       int
	status      Status
	totalPrice  Money
	cancelledBy *CancelReason
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	services *Services,
	rt RoomTypeSpec,
	guestID uuid.UUID,
	stay Stay,
	rooms int,
) (*Booking, error) {
	if guestID == uuid.Nil {
		return nil, ErrInvalidGuest
	}
	if rooms < 1 {
		return nil, ErrInvalidRoomCount
	}
	now := services.Clock.Now()
	if stay.CheckIn().Before(calendar.FromTime(now)) {
		return nil, ErrCheckInInPast
	}

	nightly, err := NewMoney(rt.PricePerNightCents)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		roomTypeID: rt.ID,
		guestID:    guestID,
		stay:       stay,
		rooms:      rooms,
		status:     StatusPending,
		totalPrice: nightly.Times(stay.Nights() * rooms),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, roomTypeID, guestID uuid.UUID,
	stay Stay,
	rooms int,
	status Status,
	totalPrice Money,
	cancelledBy *CancelReason,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		roomTypeID:  roomTypeID,
		guestID:     guestID,
		stay:        stay,
		rooms:       rooms,
		status:      status,
		totalPrice:  totalPrice,
		cancelledBy: cancelledBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(reason CancelReason, now time.Time) error {
	if !reason.IsValid() {
		return ErrInvalidCancelReason
	}
	if !b.status.ConsumesInventory() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.cancelledBy = &reason
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if calendar.FromTime(now).Before(b.stay.CheckOut()) {
		return ErrCompletedBeforeCheckout
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.ConsumesInventory()
}

// RoomsOn is the number of rooms the booking holds on date d.
func (b *Booking) RoomsOn(d calendar.Date) int {
	if !b.IsActive() || !b.stay.Covers(d) {
		return 0
	}
	return b.rooms
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) RoomTypeID() uuid.UUID      { return b.roomTypeID }
func (b *Booking) GuestID() uuid.UUID         { return b.guestID }
func (b *Booking) Stay() Stay                 { return b.stay }
func (b *Booking) NumberOfRooms() int         { return b.rooms }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) TotalPrice() Money          { return b.totalPrice }
func (b *Booking) CancelledBy() *CancelReason { return b.cancelledBy }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
