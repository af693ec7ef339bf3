package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/calendar"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

// MaxAvailabilityWindowDays bounds a single availability query.
const MaxAvailabilityWindowDays = 366

var (
	ErrInvalidDateRange  = errs.New("start date must be before end date")
	ErrDateRangeTooLarge = errs.New("date range too large")
)

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, start, end calendar.Date) ([]DayAvailabilityView, error)
}

type AvailabilityReadStore interface {
	OverridesInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) ([]OverrideView, error)
	DailyBookedInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) (map[calendar.Date]int, error)
}

type availabilityQueriesImpl struct {
	uow          shared.UnitOfWork
	roomTypes    RoomTypeReadStore
	availability AvailabilityReadStore
}

func NewAvailabilityQueries(uow shared.UnitOfWork, roomTypes RoomTypeReadStore, availabilityStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:          uow,
		roomTypes:    roomTypes,
		availability: availabilityStore,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomTypeID uuid.UUID, start, end calendar.Date) ([]DayAvailabilityView, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, ErrInvalidDateRange
	}
	if start.DaysUntil(end) > MaxAvailabilityWindowDays {
		return nil, ErrDateRangeTooLarge
	}

	rt, err := findRoomType(ctx, q.roomTypes, roomTypeID)
	if err != nil {
		return nil, err
	}

	var (
		overrides []OverrideView
		booked    map[calendar.Date]int
	)
	// one snapshot for overrides and booked counts
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var readErr error
		overrides, readErr = q.availability.OverridesInRange(ctx, db, roomTypeID, start, end)
		if readErr != nil {
			return readErr
		}
		booked, readErr = q.availability.DailyBookedInRange(ctx, db, roomTypeID, start, end)
		return readErr
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to read availability")
	}

	return mergeAvailability(rt.BaseAvailability, start, end, overrides, booked), nil
}

func mergeAvailability(base int, start, end calendar.Date, overrides []OverrideView, booked map[calendar.Date]int) []DayAvailabilityView {
	byDate := make(map[calendar.Date]OverrideView, len(overrides))
	for _, o := range overrides {
		byDate[o.Date] = o
	}

	days := calendar.Range(start, end)
	views := make([]DayAvailabilityView, 0, len(days))
	for _, d := range days {
		view := DayAvailabilityView{
			Date:           d,
			AvailableRooms: base,
			BookedRooms:    booked[d],
		}
		if o, ok := byDate[d]; ok {
			view.AvailableRooms = o.AvailableRooms
			view.IsManuallySet = o.IsManuallySet
		}
		views = append(views, view)
	}
	return views
}
