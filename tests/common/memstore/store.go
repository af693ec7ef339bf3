//go:build unit

package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/roomtype"
	"hotel-availability/internal/infra"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type overrideKey struct {
	roomTypeID uuid.UUID
	date       string
}

type idempotencyKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type user struct {
	ID        uuid.UUID
	Email     string
	LastLogin *time.Time
}

// Job is a stored notification job.
type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int
	LastError *string
	RunAt     time.Time
}

// Store is an in-memory shared.UnitOfWork. Within holds the store lock for the
// whole callback so transactions run one at a time, and a callback error
// replays the recorded rollback actions.
type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	hotels      map[uuid.UUID]shared.HotelSnapshot
	roomTypes   map[uuid.UUID]shared.RoomTypeSnapshot
	overrides   map[overrideKey]availability.Override
	bookings    map[uuid.UUID]shared.BookingSnapshot
	users       map[uuid.UUID]*user
	idempotency map[idempotencyKey]shared.IdempotencyRecord
	jobs        []*Job

	lockCalls [][]calendar.Date
	failures  map[string]error
	commits   int
	rollbacks int
}

func New(c clock.Clock) *Store {
	return &Store{
		clock:       c,
		hotels:      make(map[uuid.UUID]shared.HotelSnapshot),
		roomTypes:   make(map[uuid.UUID]shared.RoomTypeSnapshot),
		overrides:   make(map[overrideKey]availability.Override),
		bookings:    make(map[uuid.UUID]shared.BookingSnapshot),
		users:       make(map[uuid.UUID]*user),
		idempotency: make(map[idempotencyKey]shared.IdempotencyRecord),
		failures:    make(map[string]error),
	}
}

type transaction struct {
	s               *Store
	rollbackActions []func()
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trx := &transaction{s: s}
	if err := fn(ctx, trx); err != nil {
		for i := len(trx.rollbackActions) - 1; i >= 0; i-- {
			trx.rollbackActions[i]()
		}
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, locked: false}
}

// FailOn makes the named operation return err until cleared with a nil err.
// Names are "<Repository>.<Method>", for example "Bookings.UpdateStatus".
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) fail(op string) error {
	return s.failures[op]
}

func (t *transaction) RoomTypes() shared.RoomTypeRepository         { return roomTypeRepo{t} }
func (t *transaction) Availability() shared.AvailabilityRepository  { return availabilityRepo{t} }
func (t *transaction) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *transaction) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t} }
func (t *transaction) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *transaction) Users() shared.UserRepository                 { return userRepo{t} }
func (t *transaction) Reads() shared.CommandReads                   { return &reads{s: t.s, locked: true} }
func (t *transaction) DB() sqlc.DBTX                                { return nil }

func (t *transaction) onRollback(fn func()) {
	t.rollbackActions = append(t.rollbackActions, fn)
}

type roomTypeRepo struct{ t *transaction }

func (r roomTypeRepo) Create(_ context.Context, _ sqlc.DBTX, rt *roomtype.RoomType) (uuid.UUID, error) {
	s := r.t.s
	if err := s.fail("RoomTypes.Create"); err != nil {
		return uuid.Nil, err
	}
	hotel, ok := s.hotels[rt.HotelID()]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("hotel missing", nil, infra.KindForeignKeyViolated)
	}
	for _, existing := range s.roomTypes {
		if existing.HotelID == rt.HotelID() && existing.Name == rt.Name() {
			return uuid.Nil, infra.WrapRepoErr("room type name taken", nil, infra.KindDuplicateKey)
		}
	}

	now := s.clock.Now()
	id := rt.ID()
	s.roomTypes[id] = shared.RoomTypeSnapshot{
		ID:                 id,
		HotelID:            rt.HotelID(),
		HotelOwnerID:       hotel.OwnerID,
		Name:               rt.Name(),
		BaseAvailability:   rt.BaseAvailability(),
		PricePerNightCents: rt.PricePerNightCents(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	r.t.onRollback(func() { delete(s.roomTypes, id) })
	return id, nil
}

func (r roomTypeRepo) Update(_ context.Context, _ sqlc.DBTX, rt *roomtype.RoomType) error {
	s := r.t.s
	if err := s.fail("RoomTypes.Update"); err != nil {
		return err
	}
	prev, ok := s.roomTypes[rt.ID()]
	if !ok {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	next := prev
	next.Name = rt.Name()
	next.BaseAvailability = rt.BaseAvailability()
	next.PricePerNightCents = rt.PricePerNightCents()
	next.UpdatedAt = s.clock.Now()
	s.roomTypes[rt.ID()] = next
	r.t.onRollback(func() { s.roomTypes[prev.ID] = prev })
	return nil
}

type availabilityRepo struct{ t *transaction }

func (r availabilityRepo) LockDates(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, dates []calendar.Date) error {
	s := r.t.s
	if err := s.fail("Availability.LockDates"); err != nil {
		return err
	}
	s.lockCalls = append(s.lockCalls, append([]calendar.Date(nil), dates...))
	return nil
}

func (r availabilityRepo) UpsertOverride(_ context.Context, _ sqlc.DBTX, o availability.Override) error {
	s := r.t.s
	if err := s.fail("Availability.UpsertOverride"); err != nil {
		return err
	}
	key := overrideKey{roomTypeID: o.RoomTypeID(), date: o.Date().String()}
	prev, existed := s.overrides[key]
	s.overrides[key] = o
	r.t.onRollback(func() {
		if existed {
			s.overrides[key] = prev
			return
		}
		delete(s.overrides, key)
	})
	return nil
}

type bookingRepo struct{ t *transaction }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	s := r.t.s
	if err := s.fail("Bookings.Create"); err != nil {
		return uuid.Nil, err
	}
	rt, ok := s.roomTypes[b.RoomTypeID()]
	if !ok {
		return uuid.Nil, infra.WrapRepoErr("room type missing", nil, infra.KindForeignKeyViolated)
	}

	snap := shared.BookingSnapshot{
		ID:              b.ID(),
		RoomTypeID:      b.RoomTypeID(),
		HotelOwnerID:    rt.HotelOwnerID,
		GuestID:         b.GuestID(),
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		NumberOfRooms:   b.NumberOfRooms(),
		Status:          b.Status(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CancelledBy:     b.CancelledBy(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	if u, ok := s.users[b.GuestID()]; ok {
		snap.GuestEmail = u.Email
	}
	s.bookings[snap.ID] = snap
	r.t.onRollback(func() { delete(s.bookings, snap.ID) })
	return snap.ID, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, from, to booking.Status, cancelledBy *booking.CancelReason) error {
	s := r.t.s
	if err := s.fail("Bookings.UpdateStatus"); err != nil {
		return err
	}
	prev, ok := s.bookings[id]
	if !ok || prev.Status != from {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	next := prev
	next.Status = to
	next.CancelledBy = cancelledBy
	next.UpdatedAt = s.clock.Now()
	s.bookings[id] = next
	r.t.onRollback(func() { s.bookings[id] = prev })
	return nil
}

type idempotencyRepo struct{ t *transaction }

func (r idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, requestHash string, expiresAt time.Time) error {
	s := r.t.s
	if err := s.fail("Idempotency.TryInsert"); err != nil {
		return err
	}
	k := idempotencyKey{key: key, userID: userID}
	if _, exists := s.idempotency[k]; exists {
		return nil
	}
	s.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	r.t.onRollback(func() { delete(s.idempotency, k) })
	return nil
}

func (r idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, bookingID uuid.UUID) error {
	s := r.t.s
	if err := s.fail("Idempotency.UpdateStatusCompleted"); err != nil {
		return err
	}
	k := idempotencyKey{key: key, userID: userID}
	prev, ok := s.idempotency[k]
	if !ok {
		return nil
	}
	next := prev
	next.Status = shared.IdempotencyStatusCompleted
	next.ResultBookingID = &bookingID
	s.idempotency[k] = next
	r.t.onRollback(func() { s.idempotency[k] = prev })
	return nil
}

func (r idempotencyRepo) ClaimExpiredIdempotencyKey(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	s := r.t.s
	if err := s.fail("Idempotency.ClaimExpiredIdempotencyKey"); err != nil {
		return 0, err
	}
	k := idempotencyKey{key: key, userID: userID}
	prev, ok := s.idempotency[k]
	if !ok || !prev.ExpiresAt.Before(s.clock.Now()) {
		return 0, nil
	}
	s.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	r.t.onRollback(func() { s.idempotency[k] = prev })
	return 1, nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX) (int64, error) {
	s := r.t.s
	if err := s.fail("Idempotency.DeleteExpired"); err != nil {
		return 0, err
	}
	var n int64
	now := s.clock.Now()
	for k, rec := range s.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(s.idempotency, k)
			r.t.onRollback(func() { s.idempotency[k] = rec })
			n++
		}
	}
	return n, nil
}

type notificationRepo struct{ t *transaction }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	s := r.t.s
	if err := s.fail("Notifications.CreateJob"); err != nil {
		return err
	}
	s.jobs = append(s.jobs, &Job{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		Status:  shared.NotificationStatusQueued,
		RunAt:   runAt,
	})
	n := len(s.jobs) - 1
	r.t.onRollback(func() { s.jobs = s.jobs[:n] })
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, limit int32) ([]shared.NotificationJob, error) {
	s := r.t.s
	if err := s.fail("Notifications.ClaimDue"); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	due := make([]*Job, 0)
	for _, j := range s.jobs {
		if j.Status == shared.NotificationStatusQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	sort.SliceStable(due, func(i, k int) bool { return due[i].RunAt.Before(due[k].RunAt) })
	if len(due) > int(limit) {
		due = due[:limit]
	}

	out := make([]shared.NotificationJob, 0, len(due))
	for _, j := range due {
		out = append(out, shared.NotificationJob{
			ID:       j.ID,
			Kind:     j.Kind,
			Topic:    j.Topic,
			Payload:  j.Payload,
			Attempts: j.Attempts,
		})
	}
	return out, nil
}

func (r notificationRepo) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error {
	s := r.t.s
	if err := s.fail("Notifications.UpdateJobStatus"); err != nil {
		return err
	}
	for _, j := range s.jobs {
		if j.ID != jobID {
			continue
		}
		prev := *j
		j.Status = status
		j.LastError = lastError
		j.RunAt = runAt
		j.Attempts++
		r.t.onRollback(func() { *j = prev })
		return nil
	}
	return nil
}

type userRepo struct{ t *transaction }

func (r userRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	s := r.t.s
	if err := s.fail("Users.UpdateLastLogin"); err != nil {
		return err
	}
	u, ok := s.users[userID]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	prev := u.LastLogin
	now := s.clock.Now()
	u.LastLogin = &now
	r.t.onRollback(func() { u.LastLogin = prev })
	return nil
}
