package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"
	"hotel-availability/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetBookingsByGuestFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByGuestFirstPageParams) ([]sqlc.GetBookingsByGuestFirstPageRow, error)
	GetBookingsByGuestKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsByGuestKeysetParams) ([]sqlc.GetBookingsByGuestKeysetRow, error)
	ListActiveBookingsForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsForDateParams) ([]sqlc.ListActiveBookingsForDateRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	return &queries.BookingView{
		ID:              row.ID,
		RoomTypeID:      row.RoomTypeID,
		RoomTypeName:    row.RoomTypeName,
		HotelID:         row.HotelID,
		HotelOwnerID:    row.HotelOwnerID,
		GuestID:         row.GuestID,
		GuestEmail:      row.GuestEmail,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
		NumberOfRooms:   int(row.NumberOfRooms),
		Status:          row.Status,
		TotalPriceCents: row.TotalPriceCents,
		CancelledBy:     pgconv.StringPtrFromPgtype(row.CancelledBy),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByGuestFirstPage(ctx, r.db, sqlc.GetBookingsByGuestFirstPageParams{
		GuestID: guestID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:              row.ID,
			RoomTypeID:      row.RoomTypeID,
			RoomTypeName:    row.RoomTypeName,
			CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
			NumberOfRooms:   int(row.NumberOfRooms),
			Status:          row.Status,
			TotalPriceCents: row.TotalPriceCents,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *BookingReadStore) ListByGuestKeyset(ctx context.Context, guestID uuid.UUID, cursor *queries.Cursor, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsByGuestKeyset(ctx, r.db, sqlc.GetBookingsByGuestKeysetParams{
		GuestID:   guestID,
		CreatedAt: pgconv.TimeToPgtype(cursor.CreatedAt),
		ID:        cursor.ID,
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings with cursor", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:              row.ID,
			RoomTypeID:      row.RoomTypeID,
			RoomTypeName:    row.RoomTypeName,
			CheckInDate:     pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate:    pgconv.DateFromPgtype(row.CheckOutDate),
			NumberOfRooms:   int(row.NumberOfRooms),
			Status:          row.Status,
			TotalPriceCents: row.TotalPriceCents,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

// ListActiveOn returns pending and confirmed bookings whose stay covers date,
// largest first, then oldest.
func (r *BookingReadStore) ListActiveOn(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) ([]*queries.ActiveBookingView, error) {
	rows, err := r.queries.ListActiveBookingsForDate(ctx, r.db, sqlc.ListActiveBookingsForDateParams{
		RoomTypeID: roomTypeID,
		Date:       pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	views := make([]*queries.ActiveBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ActiveBookingView{
			ID:            row.ID,
			GuestID:       row.GuestID,
			GuestEmail:    row.GuestEmail,
			CheckInDate:   pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate:  pgconv.DateFromPgtype(row.CheckOutDate),
			NumberOfRooms: int(row.NumberOfRooms),
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
