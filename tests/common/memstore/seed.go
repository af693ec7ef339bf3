//go:build unit

package memstore

import (
	"time"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) SeedUser(id uuid.UUID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &user{ID: id, Email: email}
}

func (s *Store) SeedHotel(h shared.HotelSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[h.ID] = h
}

// SeedRoomType also registers the owning hotel when it is unknown.
func (s *Store) SeedRoomType(rt shared.RoomTypeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[rt.HotelID]; !ok {
		s.hotels[rt.HotelID] = shared.HotelSnapshot{ID: rt.HotelID, OwnerID: rt.HotelOwnerID, Name: "Seeded Hotel"}
	}
	s.roomTypes[rt.ID] = rt
}

func (s *Store) SeedOverride(roomTypeID uuid.UUID, date calendar.Date, rooms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[overrideKey{roomTypeID: roomTypeID, date: date.String()}] = availability.ReconstructOverride(roomTypeID, date, rooms, true)
}

// SeedBooking stores b as given. Zero timestamps are filled from the clock.
func (s *Store) SeedBooking(b shared.BookingSnapshot) shared.BookingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = booking.StatusConfirmed
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.clock.Now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	if rt, ok := s.roomTypes[b.RoomTypeID]; ok && b.HotelOwnerID == uuid.Nil {
		b.HotelOwnerID = rt.HotelOwnerID
	}
	s.bookings[b.ID] = b
	return b
}

func (s *Store) SeedIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idempotency[idempotencyKey{key: rec.Key, userID: rec.UserID}] = rec
}

func (s *Store) SeedJob(topic string, payload []byte, runAt time.Time) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &Job{
		ID:      uuid.New(),
		Kind:    shared.NotificationKindEmail,
		Topic:   topic,
		Payload: payload,
		Status:  shared.NotificationStatusQueued,
		RunAt:   runAt,
	}
	s.jobs = append(s.jobs, j)
	return j
}

func (s *Store) Booking(id uuid.UUID) (shared.BookingSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

func (s *Store) Bookings() []shared.BookingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.BookingSnapshot, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

func (s *Store) RoomType(id uuid.UUID) (shared.RoomTypeSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.roomTypes[id]
	return rt, ok
}

// Override returns the stored override for the date, if any.
func (s *Store) Override(roomTypeID uuid.UUID, date calendar.Date) (availability.Override, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[overrideKey{roomTypeID: roomTypeID, date: date.String()}]
	return o, ok
}

// BookedRooms sums active bookings for the date.
func (s *Store) BookedRooms(roomTypeID uuid.UUID, date calendar.Date) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, b := range s.activeOn(roomTypeID, date) {
		total += b.NumberOfRooms
	}
	return total
}

func (s *Store) Idempotency(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.idempotency[idempotencyKey{key: key, userID: userID}]
	return rec, ok
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out
}

func (s *Store) LastLogin(userID uuid.UUID) *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u.LastLogin
	}
	return nil
}

func (s *Store) LockCalls() [][]calendar.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]calendar.Date(nil), s.lockCalls...)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}
