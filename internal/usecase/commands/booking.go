package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour
)

var (
	ErrBookingNotFound          = errs.New("booking not found")
	ErrInvalidBooking           = errs.New("invalid booking")
	ErrInsufficientAvailability = errs.New("insufficient availability")
	ErrInvalidTransition        = errs.New("invalid status transition")
	ErrIdempotencyKeyReused     = errs.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed   = errs.New("idempotency check failed")
)

type CreateBookingInput struct {
	RoomTypeID    uuid.UUID     `json:"room_type_id"`
	CheckIn       calendar.Date `json:"check_in"`
	CheckOut      calendar.Date `json:"check_out"`
	NumberOfRooms int           `json:"number_of_rooms"`
}

type CreateBookingResult struct {
	Booking    shared.BookingSnapshot
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, input CreateBookingInput, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error)
	Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		clock:    clock,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, actor shared.Actor, input CreateBookingInput, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	stay, err := booking.NewStay(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	if input.NumberOfRooms < 1 {
		return nil, errs.Mark(booking.ErrInvalidRoomCount, ErrInvalidBooking)
	}

	requestHash := calculateRequestHash(input)
	expiresAt := b.clock.Now().Add(idempotencyTTL)

	var result *CreateBookingResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed, claimErr := b.claimIdempotencyKey(ctx, tx, idempotencyKey, actor.UserID, requestHash, expiresAt)
		if claimErr != nil {
			return claimErr
		}
		if replayed != nil {
			result = &CreateBookingResult{Booking: *replayed, IsReplayed: true}
			return nil
		}

		created, createErr := b.createInTx(ctx, tx, actor, input.RoomTypeID, stay, input.NumberOfRooms)
		if createErr != nil {
			return createErr
		}

		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor.UserID, calculateIDHash(created.ID), created.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CreateBookingResult{Booking: *created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		slog.Info("booking created",
			"booking_id", result.Booking.ID,
			"room_type_id", result.Booking.RoomTypeID,
			"check_in", result.Booking.CheckIn.String(),
			"check_out", result.Booking.CheckOut.String(),
			"rooms", result.Booking.NumberOfRooms)
	}
	return result, nil
}

// claimIdempotencyKey returns the earlier booking when the key was already completed.
func (b *bookingCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*shared.BookingSnapshot, error) {
	claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed > 0 {
		return nil, nil
	}

	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createBookingEndpoint, requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusProcessing:
		// processing here is always the row this transaction inserted
		return nil, nil
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		snap, err := tx.Reads().BookingByID(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		return snap, nil
	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (b *bookingCommandsImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	actor shared.Actor,
	roomTypeID uuid.UUID,
	stay booking.Stay,
	rooms int,
) (*shared.BookingSnapshot, error) {
	nights := stay.Dates()
	// same lock scope and order as availability updates
	if err := tx.Availability().LockDates(ctx, tx.DB(), roomTypeID, nights); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rt, err := tx.Reads().RoomTypeByID(ctx, roomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomTypeNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, night := range nights {
		override, err := tx.Reads().OverrideOn(ctx, roomTypeID, night)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		booked, err := tx.Reads().BookedRooms(ctx, roomTypeID, night)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if booked+rooms > availability.Effective(rt.BaseAvailability, override) {
			slog.Info("booking rejected",
				"room_type_id", roomTypeID,
				"date", night.String(),
				"booked", booked,
				"requested_rooms", rooms)
			return nil, ErrInsufficientAvailability
		}
	}

	entity, err := booking.NewBooking(b.services, booking.RoomTypeSpec{
		ID:                 rt.ID,
		PricePerNightCents: rt.PricePerNightCents,
	}, actor.UserID, stay, rooms)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// reload for guest email and stored timestamps
	created, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := enqueueBookingNotification(ctx, tx, shared.NotificationTopicBookingCreated, *created, created.Status, nil, b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (b *bookingCommandsImpl) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return b.transition(ctx, id, func(snap *shared.BookingSnapshot, entity *booking.Booking, now time.Time) (string, error) {
		if !actor.CanManageHotel(snap.HotelOwnerID) {
			return "", ErrForbidden
		}
		return shared.NotificationTopicBookingConfirmed, entity.Confirm(now)
	})
}

// Cancel records a guest cancellation for the booking's guest and an owner
// cancellation for hotel managers.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return b.transition(ctx, id, func(snap *shared.BookingSnapshot, entity *booking.Booking, now time.Time) (string, error) {
		var reason booking.CancelReason
		switch {
		case actor.CanManageHotel(snap.HotelOwnerID):
			reason = booking.CancelledByOwner
		case snap.GuestID == actor.UserID:
			reason = booking.CancelledByGuest
		default:
			return "", ErrForbidden
		}
		return shared.NotificationTopicBookingCancelled, entity.Cancel(reason, now)
	})
}

func (b *bookingCommandsImpl) Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return b.transition(ctx, id, func(snap *shared.BookingSnapshot, entity *booking.Booking, now time.Time) (string, error) {
		if !actor.CanManageHotel(snap.HotelOwnerID) {
			return "", ErrForbidden
		}
		// completion sends no notification
		return "", entity.Complete(now)
	})
}

type transitionFunc func(snap *shared.BookingSnapshot, entity *booking.Booking, now time.Time) (topic string, err error)

func (b *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, apply transitionFunc) (*shared.BookingSnapshot, error) {
	var updated *shared.BookingSnapshot
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := booking.ReconstructBooking(
			snap.ID, snap.RoomTypeID, snap.GuestID,
			booking.ReconstructStay(snap.CheckIn, snap.CheckOut),
			snap.NumberOfRooms, snap.Status, moneyOrZero(snap.TotalPriceCents),
			snap.CancelledBy, snap.CreatedAt, snap.UpdatedAt,
		)
		from := entity.Status()

		now := b.clock.Now()
		topic, err := apply(snap, entity, now)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidTransition) || errors.Is(err, booking.ErrCompletedBeforeCheckout) {
				return errs.Mark(err, ErrInvalidTransition)
			}
			return err
		}

		err = tx.Bookings().UpdateStatus(ctx, tx.DB(), id, from, entity.Status(), entity.CancelledBy())
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrInvalidTransition)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		next := snapshotFromBooking(entity, snap.GuestEmail, snap.HotelOwnerID)
		next.UpdatedAt = now
		if topic != "" {
			if err := enqueueBookingNotification(ctx, tx, topic, next, next.Status, next.CancelledBy, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking status changed", "booking_id", id, "status", updated.Status.String())
	return updated, nil
}

func moneyOrZero(cents int64) booking.Money {
	m, err := booking.NewMoney(cents)
	if err != nil {
		return booking.Money{}
	}
	return m
}

func calculateRequestHash(input CreateBookingInput) string {
	data, _ := json.Marshal(input)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
