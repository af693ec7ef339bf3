package booking

import (
	"errors"

	"hotel-availability/internal/domain/calendar"
)

const MaxStayNights = 30

var (
	ErrInvalidStay   = errors.New("check-out date must be after check-in date")
	ErrStayTooLong   = errors.New("stay exceeds maximum number of nights")
	ErrNegativeMoney = errors.New("money cannot be negative")
)

// Stay is the half-open night range [checkIn, checkOut).
type Stay struct {
	checkIn  calendar.Date
	checkOut calendar.Date
}

func NewStay(checkIn, checkOut calendar.Date) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkIn.Before(checkOut) {
		return Stay{}, ErrInvalidStay
	}
	if checkIn.DaysUntil(checkOut) > MaxStayNights {
		return Stay{}, ErrStayTooLong
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func ReconstructStay(checkIn, checkOut calendar.Date) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() calendar.Date  { return s.checkIn }
func (s Stay) CheckOut() calendar.Date { return s.checkOut }

func (s Stay) Nights() int {
	return s.checkIn.DaysUntil(s.checkOut)
}

// Dates lists every night of the stay in ascending order.
func (s Stay) Dates() []calendar.Date {
	return calendar.Range(s.checkIn, s.checkOut)
}

// Covers reports whether the guest occupies the room on the night of d.
func (s Stay) Covers(d calendar.Date) bool {
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}
