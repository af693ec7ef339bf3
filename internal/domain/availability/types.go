package availability

import (
	"errors"
	"time"

	"hotel-availability/internal/domain/calendar"

	"github.com/google/uuid"
)

var (
	ErrNegativeAvailability = errors.New("available rooms cannot be negative")
	ErrNoUpdates            = errors.New("at least one availability update is required")
	ErrDuplicateDate        = errors.New("duplicate date in availability updates")
	ErrInvalidDate          = errors.New("availability date is required")
	ErrTooManyUpdates       = errors.New("too many availability updates")
)

// MaxUpdatesPerRequest bounds one reconciliation batch.
const MaxUpdatesPerRequest = 366

type Outcome string

const (
	OutcomeApply          Outcome = "apply"
	OutcomeConflict       Outcome = "conflict"
	OutcomeCancelAndApply Outcome = "cancel_and_apply"
)

func (o Outcome) String() string {
	return string(o)
}

// Override replaces a room type's base availability for one date.
type Override struct {
	roomTypeID     uuid.UUID
	date           calendar.Date
	availableRooms int
	isManuallySet  bool
}

func NewManualOverride(roomTypeID uuid.UUID, date calendar.Date, availableRooms int) (Override, error) {
	if date.IsZero() {
		return Override{}, ErrInvalidDate
	}
	if availableRooms < 0 {
		return Override{}, ErrNegativeAvailability
	}
	return Override{
		roomTypeID:     roomTypeID,
		date:           date,
		availableRooms: availableRooms,
		isManuallySet:  true,
	}, nil
}

func ReconstructOverride(roomTypeID uuid.UUID, date calendar.Date, availableRooms int, isManuallySet bool) Override {
	return Override{
		roomTypeID:     roomTypeID,
		date:           date,
		availableRooms: availableRooms,
		isManuallySet:  isManuallySet,
	}
}

func (o Override) RoomTypeID() uuid.UUID { return o.roomTypeID }
func (o Override) Date() calendar.Date   { return o.date }
func (o Override) AvailableRooms() int   { return o.availableRooms }
func (o Override) IsManuallySet() bool   { return o.isManuallySet }

// Effective returns the room count in force for a date: the override when one exists, else base.
func Effective(base int, o *Override) int {
	if o != nil {
		return o.availableRooms
	}
	return base
}

// Update is one requested {date, availableRooms} pair.
type Update struct {
	Date           calendar.Date
	AvailableRooms int
}

// Candidate is an active booking that occupies rooms on the date being reconciled.
type Candidate struct {
	BookingID uuid.UUID
	Rooms     int
	CreatedAt time.Time
}
