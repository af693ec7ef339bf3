package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

var ErrInvalidAvailabilityUpdate = errs.New("invalid availability update")

type UpdateAvailabilityInput struct {
	RoomTypeID        uuid.UUID
	Updates           []availability.Update
	ForceCancellation bool
}

type DateResult struct {
	Date              calendar.Date
	AvailableRooms    int
	CancelledBookings int
}

// AvailabilityConflict is returned instead of applying a reduction below the booked count.
type AvailabilityConflict struct {
	Date                  calendar.Date
	RequestedAvailability int
	ExistingBookings      int
	AffectedBookings      []shared.BookingSnapshot
}

// UpdateAvailabilityResult carries either applied Results or, when Conflict is set,
// the unresolved conflicts. A conflict is an outcome, not an error.
type UpdateAvailabilityResult struct {
	Results   []DateResult
	Conflict  *AvailabilityConflict
	Conflicts []AvailabilityConflict
}

type AvailabilityCommands interface {
	UpdateAvailability(ctx context.Context, actor shared.Actor, input UpdateAvailabilityInput) (*UpdateAvailabilityResult, error)
}

type availabilityCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clock clock.Clock) AvailabilityCommands {
	return &availabilityCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (a *availabilityCommandsImpl) UpdateAvailability(ctx context.Context, actor shared.Actor, input UpdateAvailabilityInput) (*UpdateAvailabilityResult, error) {
	updates, err := availability.SortUpdates(input.Updates)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityUpdate)
	}

	dates := make([]calendar.Date, len(updates))
	for i, u := range updates {
		dates[i] = u.Date
	}

	var result *UpdateAvailabilityResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// locks before any read
		if lockErr := tx.Availability().LockDates(ctx, tx.DB(), input.RoomTypeID, dates); lockErr != nil {
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		rt, readErr := tx.Reads().RoomTypeByID(ctx, input.RoomTypeID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.Mark(readErr, ErrRoomTypeNotFound)
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}
		if !actor.CanManageHotel(rt.HotelOwnerID) {
			return ErrForbidden
		}

		byID := make(map[uuid.UUID]shared.BookingSnapshot)
		candidates := make(map[string][]availability.Candidate, len(dates))
		for _, d := range dates {
			active, listErr := tx.Reads().ActiveBookingsOn(ctx, input.RoomTypeID, d)
			if listErr != nil {
				return errs.Mark(listErr, ErrDatabaseOperationFailed)
			}
			for _, b := range active {
				byID[b.ID] = b
				candidates[d.String()] = append(candidates[d.String()], availability.Candidate{
					BookingID: b.ID,
					Rooms:     b.NumberOfRooms,
					CreatedAt: b.CreatedAt,
				})
			}
		}

		batch, evalErr := availability.ReconcileBatch(updates, candidates, input.ForceCancellation)
		if evalErr != nil {
			return errs.Mark(evalErr, ErrInvalidAvailabilityUpdate)
		}

		if batch.HasConflict() {
			result = conflictResult(batch, byID)
			slog.Info("availability update conflicts",
				"room_type_id", input.RoomTypeID,
				"conflicting_dates", len(batch.Conflicts),
				"first_date", result.Conflict.Date.String())
			return nil
		}

		applied, applyErr := a.apply(ctx, tx, input.RoomTypeID, batch, byID)
		if applyErr != nil {
			return applyErr
		}
		result = applied
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (a *availabilityCommandsImpl) apply(
	ctx context.Context,
	tx shared.Tx,
	roomTypeID uuid.UUID,
	batch availability.Batch,
	byID map[uuid.UUID]shared.BookingSnapshot,
) (*UpdateAvailabilityResult, error) {
	now := a.clock.Now()
	reason := booking.CancelledByAvailabilityReduction

	for _, id := range batch.Cancellations() {
		snap := byID[id]
		err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, snap.Status, booking.StatusCancelled, &reason)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := enqueueBookingNotification(ctx, tx, shared.NotificationTopicBookingCancelled, snap, booking.StatusCancelled, &reason, now); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	result := &UpdateAvailabilityResult{Results: make([]DateResult, 0, len(batch.Decisions))}
	for _, d := range batch.Decisions {
		o, err := availability.NewManualOverride(roomTypeID, d.Date, d.Requested)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidAvailabilityUpdate)
		}
		if err := tx.Availability().UpsertOverride(ctx, tx.DB(), o); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result.Results = append(result.Results, DateResult{
			Date:              d.Date,
			AvailableRooms:    d.Requested,
			CancelledBookings: len(d.Selected),
		})
		slog.Info("availability reconciled",
			"room_type_id", roomTypeID,
			"date", d.Date.String(),
			"requested", d.Requested,
			"booked", d.Booked,
			"outcome", d.Outcome.String(),
			"cancelled", len(d.Selected))
	}
	return result, nil
}

func conflictResult(batch availability.Batch, byID map[uuid.UUID]shared.BookingSnapshot) *UpdateAvailabilityResult {
	result := &UpdateAvailabilityResult{Conflicts: make([]AvailabilityConflict, 0, len(batch.Conflicts))}
	for _, d := range batch.Conflicts {
		affected := make([]shared.BookingSnapshot, 0, len(d.Selected))
		for _, c := range d.Selected {
			affected = append(affected, byID[c.BookingID])
		}
		result.Conflicts = append(result.Conflicts, AvailabilityConflict{
			Date:                  d.Date,
			RequestedAvailability: d.Requested,
			ExistingBookings:      d.Booked,
			AffectedBookings:      affected,
		})
	}
	result.Conflict = &result.Conflicts[0]
	return result
}
