package repository

import (
	"context"
	"fmt"
	"math"
	"slices"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityWriteQueries interface {
	LockRoomTypeDate(ctx context.Context, db sqlc.DBTX, lockKey string) error
	UpsertAvailabilityOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAvailabilityOverrideParams) error
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
	}
}

// LockKey is the advisory lock name for one (room type, date) inventory cell.
func LockKey(roomTypeID uuid.UUID, date calendar.Date) string {
	return fmt.Sprintf("%s:%s", roomTypeID, date)
}

// LockDates takes transaction-scoped advisory locks in ascending date order so
// that any two writers touching overlapping dates acquire them in the same order.
func (r *AvailabilityRepository) LockDates(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, dates []calendar.Date) error {
	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, calendar.Date.Compare)
	sorted = slices.CompactFunc(sorted, calendar.Date.Equal)

	for _, d := range sorted {
		if err := r.queries.LockRoomTypeDate(ctx, tx, LockKey(roomTypeID, d)); err != nil {
			return infra.WrapRepoErr("failed to lock availability date "+d.String(), err)
		}
	}
	return nil
}

func (r *AvailabilityRepository) UpsertOverride(ctx context.Context, tx sqlc.DBTX, o availability.Override) error {
	if o.AvailableRooms() > math.MaxInt32 {
		return infra.WrapRepoErr("available rooms out of range", nil, infra.KindCheckViolated)
	}

	params := sqlc.UpsertAvailabilityOverrideParams{
		RoomTypeID:     o.RoomTypeID(),
		Date:           pgconv.DateToPgtype(o.Date()),
		AvailableRooms: int32(o.AvailableRooms()),
		IsManuallySet:  o.IsManuallySet(),
	}

	if err := r.queries.UpsertAvailabilityOverride(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert availability override", err)
	}
	return nil
}
