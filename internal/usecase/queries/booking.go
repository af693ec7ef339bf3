package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking access denied")
	ErrRoomTypeAccess      = errs.New("room type access denied")
)

type BookingPage struct {
	Items      []*BookingListItem
	NextCursor string
}

type BookingQueries interface {
	GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListMyBookings(ctx context.Context, guestID uuid.UUID, after string, limit int) (*BookingPage, error)
	ListBookingsForDate(ctx context.Context, actor shared.Actor, roomTypeID uuid.UUID, date calendar.Date) ([]*ActiveBookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListByGuestKeyset(ctx context.Context, guestID uuid.UUID, cursor *Cursor, limit int32) ([]*BookingListItem, error)
	ListActiveOn(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) ([]*ActiveBookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	roomTypes RoomTypeReadStore
}

func NewBookingQueries(readStore BookingReadStore, roomTypes RoomTypeReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		roomTypes: roomTypes,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	if b.GuestID != actor.UserID && !actor.CanManageHotel(b.HotelOwnerID) {
		return nil, ErrBookingAccessDenied
	}
	return b, nil
}

// ListMyBookings pages by (created_at, id) descending; NextCursor is empty on the last page.
func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, guestID uuid.UUID, after string, limit int) (*BookingPage, error) {
	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		items []*BookingListItem
		err   error
	)
	if after == "" {
		items, err = q.readStore.ListByGuestFirstPage(ctx, guestID, fetch)
	} else {
		cursor, decodeErr := DecodeCursor(after)
		if decodeErr != nil {
			return nil, decodeErr
		}
		items, err = q.readStore.ListByGuestKeyset(ctx, guestID, cursor, fetch)
	}
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.NextCursor = EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

func (q *bookingQueriesImpl) ListBookingsForDate(ctx context.Context, actor shared.Actor, roomTypeID uuid.UUID, date calendar.Date) ([]*ActiveBookingView, error) {
	rt, err := findRoomType(ctx, q.roomTypes, roomTypeID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageHotel(rt.HotelOwnerID) {
		return nil, ErrRoomTypeAccess
	}

	return q.readStore.ListActiveOn(ctx, roomTypeID, date)
}
