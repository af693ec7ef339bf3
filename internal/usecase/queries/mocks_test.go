//go:build unit

package queries_test

import (
	"context"

	"hotel-availability/internal/domain/calendar"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRoomTypeReadStore struct {
	mock.Mock
}

func (m *mockRoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.RoomTypeView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAvailabilityReadStore struct {
	mock.Mock
}

func (m *mockAvailabilityReadStore) OverridesInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) ([]queries.OverrideView, error) {
	args := m.Called(ctx, db, roomTypeID, start, end)
	if v := args.Get(0); v != nil {
		return v.([]queries.OverrideView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvailabilityReadStore) DailyBookedInRange(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID, start, end calendar.Date) (map[calendar.Date]int, error) {
	args := m.Called(ctx, db, roomTypeID, start, end)
	if v := args.Get(0); v != nil {
		return v.(map[calendar.Date]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) ListByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, guestID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) ListByGuestKeyset(ctx context.Context, guestID uuid.UUID, cursor *queries.Cursor, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, guestID, cursor, limit)
	if v := args.Get(0); v != nil {
		return v.([]*queries.BookingListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) ListActiveOn(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) ([]*queries.ActiveBookingView, error) {
	args := m.Called(ctx, roomTypeID, date)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ActiveBookingView), args.Error(1)
	}
	return nil, args.Error(1)
}
