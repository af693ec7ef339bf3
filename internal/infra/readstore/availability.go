package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"
	"hotel-availability/internal/usecase/queries"
)

type AvailabilityReadQueries interface {
	GetAvailabilityOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailabilityOverrideParams) (sqlc.AvailabilityOverrides, error)
	ListAvailabilityOverridesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailabilityOverridesInRangeParams) ([]sqlc.AvailabilityOverrides, error)
	ListDailyBookedRoomsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDailyBookedRoomsInRangeParams) ([]sqlc.ListDailyBookedRoomsInRangeRow, error)
	SumBookedRoomsForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.SumBookedRoomsForDateParams) (int64, error)
}

// AvailabilityReadStore takes the executor per call so a multi-query read can
// share one snapshot.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
	}
}

// OverrideOn returns nil when no override row exists for the date.
func (r *AvailabilityReadStore) OverrideOn(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, date calendar.Date) (*availability.Override, error) {
	row, err := r.queries.GetAvailabilityOverride(ctx, db, sqlc.GetAvailabilityOverrideParams{
		RoomTypeID: roomTypeID,
		Date:       pgconv.DateToPgtype(date),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get availability override", err)
	}

	o := availability.ReconstructOverride(row.RoomTypeID, pgconv.DateFromPgtype(row.Date), int(row.AvailableRooms), row.IsManuallySet)
	return &o, nil
}

func (r *AvailabilityReadStore) OverridesInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) ([]queries.OverrideView, error) {
	rows, err := r.queries.ListAvailabilityOverridesInRange(ctx, db, sqlc.ListAvailabilityOverridesInRangeParams{
		RoomTypeID: roomTypeID,
		StartDate:  pgconv.DateToPgtype(start),
		EndDate:    pgconv.DateToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability overrides", err)
	}

	views := make([]queries.OverrideView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.OverrideView{
			Date:           pgconv.DateFromPgtype(row.Date),
			AvailableRooms: int(row.AvailableRooms),
			IsManuallySet:  row.IsManuallySet,
		})
	}
	return views, nil
}

// DailyBookedInRange returns booked rooms keyed by date for every day in [start, end).
func (r *AvailabilityReadStore) DailyBookedInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) (map[calendar.Date]int, error) {
	rows, err := r.queries.ListDailyBookedRoomsInRange(ctx, db, sqlc.ListDailyBookedRoomsInRangeParams{
		StartDate:  pgconv.DateToTimestamp(start),
		EndDate:    pgconv.DateToTimestamp(end),
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list daily booked rooms", err)
	}

	booked := make(map[calendar.Date]int, len(rows))
	for _, row := range rows {
		booked[pgconv.DateFromPgtype(row.Date)] = int(row.BookedRooms)
	}
	return booked, nil
}

func (r *AvailabilityReadStore) BookedRooms(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, date calendar.Date) (int, error) {
	sum, err := r.queries.SumBookedRoomsForDate(ctx, db, sqlc.SumBookedRoomsForDateParams{
		RoomTypeID: roomTypeID,
		Date:       pgconv.DateToPgtype(date),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked rooms", err)
	}
	return int(sum), nil
}
