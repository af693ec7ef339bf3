package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/roomtype"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

var (
	ErrHotelNotFound     = errs.New("hotel not found")
	ErrInvalidRoomType   = errs.New("invalid room type")
	ErrRoomTypeNameTaken = errs.New("room type name already exists in hotel")
)

type CreateRoomTypeInput struct {
	HotelID            uuid.UUID
	Name               string
	BaseAvailability   int
	PricePerNightCents int64
}

type RoomTypeCommands interface {
	Create(ctx context.Context, actor shared.Actor, input CreateRoomTypeInput) (*shared.RoomTypeSnapshot, error)
	UpdateBaseAvailability(ctx context.Context, actor shared.Actor, id uuid.UUID, baseAvailability int) (*shared.RoomTypeSnapshot, error)
}

type roomTypeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomTypeCommands(uow shared.UnitOfWork, clock clock.Clock) RoomTypeCommands {
	return &roomTypeCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (r *roomTypeCommandsImpl) Create(ctx context.Context, actor shared.Actor, input CreateRoomTypeInput) (*shared.RoomTypeSnapshot, error) {
	entity, err := roomtype.NewRoomType(input.HotelID, input.Name, input.BaseAvailability, input.PricePerNightCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomType)
	}

	var created *shared.RoomTypeSnapshot
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hotel, err := tx.Reads().HotelByID(ctx, input.HotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrHotelNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.CanManageHotel(hotel.OwnerID) {
			return ErrForbidden
		}

		id, err := tx.RoomTypes().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrRoomTypeNameTaken)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created, err = tx.Reads().RoomTypeByID(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room type created", "room_type_id", created.ID, "hotel_id", created.HotelID)
	return created, nil
}

// UpdateBaseAvailability leaves overrides and bookings untouched.
func (r *roomTypeCommandsImpl) UpdateBaseAvailability(ctx context.Context, actor shared.Actor, id uuid.UUID, baseAvailability int) (*shared.RoomTypeSnapshot, error) {
	var updated *shared.RoomTypeSnapshot
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RoomTypeByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomTypeNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.CanManageHotel(snap.HotelOwnerID) {
			return ErrForbidden
		}

		entity := roomtype.ReconstructRoomType(snap.ID, snap.HotelID, snap.Name, snap.BaseAvailability, snap.PricePerNightCents, snap.CreatedAt, snap.UpdatedAt)
		if err := entity.ChangeBaseAvailability(baseAvailability); err != nil {
			return errs.Mark(err, ErrInvalidRoomType)
		}

		if err := tx.RoomTypes().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomTypeNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		next := *snap
		next.BaseAvailability = entity.BaseAvailability()
		next.UpdatedAt = r.clock.Now()
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("base availability changed", "room_type_id", id, "base_availability", updated.BaseAvailability)
	return updated, nil
}
