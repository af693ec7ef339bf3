//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) bookingCommands() commands.BookingCommands {
	return commands.NewBookingCommands(f.store, &booking.Services{Clock: f.clock}, f.clock)
}

func (f *fixture) createInput(checkIn, checkOut string, rooms int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomTypeID:    f.roomType.ID,
		CheckIn:       calendar.MustParse(checkIn),
		CheckOut:      calendar.MustParse(checkOut),
		NumberOfRooms: rooms,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		f := newFixture(t)
		key := uuid.New()

		result, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 2), key)
		require.NoError(t, err)
		require.False(t, result.IsReplayed)

		b := result.Booking
		assert.Equal(t, booking.StatusPending, b.Status)
		assert.Equal(t, f.guest.UserID, b.GuestID)
		assert.Equal(t, "guest@example.com", b.GuestEmail)
		assert.Equal(t, 2, b.NumberOfRooms)
		assert.Equal(t, int64(2*2*15000), b.TotalPriceCents)
		assert.Equal(t, 2, f.store.BookedRooms(f.roomType.ID, calendar.MustParse("2024-03-16")))

		rec, ok := f.store.Idempotency(key, f.guest.UserID)
		require.True(t, ok)
		assert.Equal(t, shared.IdempotencyStatusCompleted, rec.Status)
		require.NotNil(t, rec.ResultBookingID)
		assert.Equal(t, b.ID, *rec.ResultBookingID)

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationTopicBookingCreated, jobs[0].Topic)
		var payload shared.BookingNotification
		require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
		assert.Equal(t, "2024-03-15", payload.CheckInDate)
		assert.Equal(t, "pending", payload.Status)
	})

	t.Run("チェックアウト日は在庫を消費しない", func(t *testing.T) {
		f := newFixture(t)
		f.seedBooking("2024-03-15", "2024-03-16", 10, 0)

		result, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-16", "2024-03-17", 10), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, result.Booking.Status)
	})

	t.Run("上書き在庫を超える泊があれば拒否", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedOverride(f.roomType.ID, calendar.MustParse("2024-03-16"), 2)
		f.seedBooking("2024-03-16", "2024-03-17", 2, 0)
		key := uuid.New()

		result, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 1), key)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrInsufficientAvailability))

		assert.Len(t, f.store.Bookings(), 1)
		assert.Empty(t, f.store.Jobs())
		_, ok := f.store.Idempotency(key, f.guest.UserID)
		assert.False(t, ok, "failed request must release its idempotency key")
	})

	t.Run("キャンセル済み予約は在庫に数えない", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedBooking(shared.BookingSnapshot{
			RoomTypeID:    f.roomType.ID,
			GuestID:       f.guest.UserID,
			CheckIn:       calendar.MustParse("2024-03-15"),
			CheckOut:      calendar.MustParse("2024-03-16"),
			NumberOfRooms: 10,
			Status:        booking.StatusCancelled,
		})

		_, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-16", 10), uuid.New())
		require.NoError(t, err)
	})

	t.Run("同じキーの再送は同じ予約を返す", func(t *testing.T) {
		f := newFixture(t)
		key := uuid.New()
		input := f.createInput("2024-03-15", "2024-03-17", 1)

		first, err := f.bookingCommands().Create(ctx, f.guest, input, key)
		require.NoError(t, err)
		second, err := f.bookingCommands().Create(ctx, f.guest, input, key)
		require.NoError(t, err)

		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.Booking.ID, second.Booking.ID)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.Jobs(), 1)
	})

	t.Run("同じキーで内容が異なればエラー", func(t *testing.T) {
		f := newFixture(t)
		key := uuid.New()

		_, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 1), key)
		require.NoError(t, err)
		_, err = f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 2), key)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused))
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("キーはユーザーごとに独立", func(t *testing.T) {
		f := newFixture(t)
		key := uuid.New()
		other := shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}

		_, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 1), key)
		require.NoError(t, err)
		result, err := f.bookingCommands().Create(ctx, other, f.createInput("2024-03-15", "2024-03-17", 1), key)
		require.NoError(t, err)

		assert.False(t, result.IsReplayed)
		assert.Len(t, f.store.Bookings(), 2)
	})

	t.Run("期限切れのキーは再利用できる", func(t *testing.T) {
		f := newFixture(t)
		key := uuid.New()
		stale := uuid.New()
		f.store.SeedIdempotency(shared.IdempotencyRecord{
			Key:             key,
			UserID:          f.guest.UserID,
			Status:          shared.IdempotencyStatusCompleted,
			RequestHash:     "stale-hash",
			ResultBookingID: &stale,
			ExpiresAt:       f.clock.Now().Add(-time.Minute),
		})

		result, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 1), key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)

		rec, _ := f.store.Idempotency(key, f.guest.UserID)
		assert.Equal(t, result.Booking.ID, *rec.ResultBookingID)
		assert.True(t, rec.ExpiresAt.After(f.clock.Now()))
	})

	t.Run("通知の保存に失敗すれば予約も残らない", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn("Notifications.CreateJob", errStorage)

		_, err := f.bookingCommands().Create(ctx, f.guest, f.createInput("2024-03-15", "2024-03-17", 1), uuid.New())
		require.Error(t, err)

		assert.Empty(t, f.store.Bookings())
	})
}

func TestCreateBooking_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    func(f *fixture) commands.CreateBookingInput
		expected error
	}{
		{
			name:     "チェックアウトがチェックイン以前NG",
			input:    func(f *fixture) commands.CreateBookingInput { return f.createInput("2024-03-17", "2024-03-17", 1) },
			expected: commands.ErrInvalidBooking,
		},
		{
			name:     "31泊NG",
			input:    func(f *fixture) commands.CreateBookingInput { return f.createInput("2024-03-15", "2024-04-15", 1) },
			expected: commands.ErrInvalidBooking,
		},
		{
			name:     "部屋数ゼロNG",
			input:    func(f *fixture) commands.CreateBookingInput { return f.createInput("2024-03-15", "2024-03-17", 0) },
			expected: commands.ErrInvalidBooking,
		},
		{
			name:     "過去のチェックインNG",
			input:    func(f *fixture) commands.CreateBookingInput { return f.createInput("2024-02-28", "2024-03-02", 1) },
			expected: commands.ErrInvalidBooking,
		},
		{
			name:     "基本在庫を超える部屋数NG",
			input:    func(f *fixture) commands.CreateBookingInput { return f.createInput("2024-03-15", "2024-03-17", 11) },
			expected: commands.ErrInsufficientAvailability,
		},
		{
			name: "存在しない部屋タイプNG",
			input: func(f *fixture) commands.CreateBookingInput {
				in := f.createInput("2024-03-15", "2024-03-17", 1)
				in.RoomTypeID = uuid.New()
				return in
			},
			expected: commands.ErrRoomTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			result, err := f.bookingCommands().Create(ctx, f.guest, tt.input(f), uuid.New())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, tt.expected), "got %v", err)
			assert.Empty(t, f.store.Bookings())
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	ctx := context.Background()

	seedPending := func(f *fixture) shared.BookingSnapshot {
		return f.store.SeedBooking(shared.BookingSnapshot{
			RoomTypeID:      f.roomType.ID,
			GuestID:         f.guest.UserID,
			GuestEmail:      "guest@example.com",
			CheckIn:         calendar.MustParse("2024-03-15"),
			CheckOut:        calendar.MustParse("2024-03-17"),
			NumberOfRooms:   1,
			Status:          booking.StatusPending,
			TotalPriceCents: 30000,
		})
	}

	t.Run("オーナーが確定", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)

		updated, err := f.bookingCommands().Confirm(ctx, f.owner, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status)
		assert.Equal(t, int64(30000), updated.TotalPriceCents)

		stored, _ := f.store.Booking(b.ID)
		assert.Equal(t, booking.StatusConfirmed, stored.Status)
		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationTopicBookingConfirmed, jobs[0].Topic)
	})

	t.Run("ゲストは確定できない", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)

		_, err := f.bookingCommands().Confirm(ctx, f.guest, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("確定済みの再確定NG", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)
		_, err := f.bookingCommands().Confirm(ctx, f.owner, b.ID)
		require.NoError(t, err)

		_, err = f.bookingCommands().Confirm(ctx, f.owner, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("ゲスト本人のキャンセル", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)

		updated, err := f.bookingCommands().Cancel(ctx, f.guest, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, updated.Status)
		require.NotNil(t, updated.CancelledBy)
		assert.Equal(t, booking.CancelledByGuest, *updated.CancelledBy)
		assert.Equal(t, 0, f.store.BookedRooms(f.roomType.ID, calendar.MustParse("2024-03-15")))
	})

	t.Run("オーナーのキャンセル", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)

		updated, err := f.bookingCommands().Cancel(ctx, f.owner, b.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.CancelledBy)
		assert.Equal(t, booking.CancelledByOwner, *updated.CancelledBy)
	})

	t.Run("他のゲストはキャンセルできない", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}

		_, err := f.bookingCommands().Cancel(ctx, stranger, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrForbidden))

		stored, _ := f.store.Booking(b.ID)
		assert.Equal(t, booking.StatusPending, stored.Status)
	})

	t.Run("キャンセル済みの再キャンセルNG", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)
		_, err := f.bookingCommands().Cancel(ctx, f.guest, b.ID)
		require.NoError(t, err)

		_, err = f.bookingCommands().Cancel(ctx, f.guest, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
		assert.Len(t, f.store.Jobs(), 1)
	})

	t.Run("チェックアウト前の完了NG", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)
		_, err := f.bookingCommands().Confirm(ctx, f.owner, b.ID)
		require.NoError(t, err)

		_, err = f.bookingCommands().Complete(ctx, f.owner, b.ID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("チェックアウト後の完了", func(t *testing.T) {
		f := newFixture(t)
		b := seedPending(f)
		_, err := f.bookingCommands().Confirm(ctx, f.owner, b.ID)
		require.NoError(t, err)
		f.clock.Set(time.Date(2024, time.March, 17, 11, 0, 0, 0, time.UTC))

		updated, err := f.bookingCommands().Complete(ctx, f.owner, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, updated.Status)
		// only the confirmation produced a job
		assert.Len(t, f.store.Jobs(), 1)
	})

	t.Run("存在しない予約", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookingCommands().Cancel(ctx, f.guest, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})
}
