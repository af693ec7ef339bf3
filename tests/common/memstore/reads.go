//go:build unit

package memstore

import (
	"context"
	"sort"
	"strings"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads takes the store lock only when used outside Within.
type reads struct {
	s      *Store
	locked bool
}

func (r *reads) enter() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r *reads) HotelByID(_ context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	defer r.enter()()
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, notFound("hotel not found")
	}
	return &h, nil
}

func (r *reads) RoomTypeByID(_ context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	defer r.enter()()
	if err := r.s.fail("Reads.RoomTypeByID"); err != nil {
		return nil, err
	}
	rt, ok := r.s.roomTypes[id]
	if !ok {
		return nil, notFound("room type not found")
	}
	return &rt, nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	defer r.enter()()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return &b, nil
}

func (r *reads) ActiveBookingsOn(_ context.Context, roomTypeID uuid.UUID, date calendar.Date) ([]shared.BookingSnapshot, error) {
	defer r.enter()()
	if err := r.s.fail("Reads.ActiveBookingsOn"); err != nil {
		return nil, err
	}
	return r.s.activeOn(roomTypeID, date), nil
}

func (r *reads) BookedRooms(_ context.Context, roomTypeID uuid.UUID, date calendar.Date) (int, error) {
	defer r.enter()()
	total := 0
	for _, b := range r.s.activeOn(roomTypeID, date) {
		total += b.NumberOfRooms
	}
	return total, nil
}

func (r *reads) OverrideOn(_ context.Context, roomTypeID uuid.UUID, date calendar.Date) (*availability.Override, error) {
	defer r.enter()()
	o, ok := r.s.overrides[overrideKey{roomTypeID: roomTypeID, date: date.String()}]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	defer r.enter()()
	rec, ok := r.s.idempotency[idempotencyKey{key: key, userID: userID}]
	if !ok || rec.ExpiresAt.Before(r.s.clock.Now()) {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

// activeOn orders like the SQL listing: rooms desc, created_at asc, id asc.
func (s *Store) activeOn(roomTypeID uuid.UUID, date calendar.Date) []shared.BookingSnapshot {
	out := make([]shared.BookingSnapshot, 0)
	for _, b := range s.bookings {
		if b.RoomTypeID != roomTypeID || !b.Status.ConsumesInventory() {
			continue
		}
		if date.Before(b.CheckIn) || !date.Before(b.CheckOut) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.NumberOfRooms != b.NumberOfRooms {
			return a.NumberOfRooms > b.NumberOfRooms
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
	return out
}
