//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/pkg/clock"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/shared"
	"hotel-availability/tests/common/builder"
	"hotel-availability/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	roomType shared.RoomTypeSnapshot
	owner    shared.Actor
	guest    shared.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := clock.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	store := memstore.New(c)

	ownerID := uuid.New()
	guestID := uuid.New()
	store.SeedUser(guestID, "guest@example.com")
	rt := builder.NewRoomTypeBuilder().WithOwner(ownerID).WithBaseAvailability(10).BuildSnapshot()
	store.SeedRoomType(rt)

	return &fixture{
		store:    store,
		clock:    c,
		roomType: rt,
		owner:    shared.Actor{UserID: ownerID, Role: user.RoleOwner},
		guest:    shared.Actor{UserID: guestID, Role: user.RoleGuest},
	}
}

// seedBooking stores an active booking created offset after the clock's now.
func (f *fixture) seedBooking(checkIn, checkOut string, rooms int, offset time.Duration) shared.BookingSnapshot {
	return f.store.SeedBooking(shared.BookingSnapshot{
		RoomTypeID:    f.roomType.ID,
		GuestID:       f.guest.UserID,
		GuestEmail:    "guest@example.com",
		CheckIn:       calendar.MustParse(checkIn),
		CheckOut:      calendar.MustParse(checkOut),
		NumberOfRooms: rooms,
		Status:        booking.StatusConfirmed,
		CreatedAt:     f.clock.Now().Add(offset),
	})
}

func (f *fixture) availabilityCommands() commands.AvailabilityCommands {
	return commands.NewAvailabilityCommands(f.store, f.clock)
}

func updates(pairs ...any) []availability.Update {
	out := make([]availability.Update, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, availability.Update{
			Date:           calendar.MustParse(pairs[i].(string)),
			AvailableRooms: pairs[i+1].(int),
		})
	}
	return out
}

func TestUpdateAvailability_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("予約数以上への変更はそのまま適用", func(t *testing.T) {
		f := newFixture(t)
		f.seedBooking("2024-03-15", "2024-03-17", 3, 0)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-15", 5),
		})
		require.NoError(t, err)
		require.Nil(t, result.Conflict)
		require.Len(t, result.Results, 1)
		assert.Equal(t, 5, result.Results[0].AvailableRooms)
		assert.Equal(t, 0, result.Results[0].CancelledBookings)

		o, ok := f.store.Override(f.roomType.ID, calendar.MustParse("2024-03-15"))
		require.True(t, ok)
		assert.Equal(t, 5, o.AvailableRooms())
		assert.True(t, o.IsManuallySet())
		assert.Equal(t, 3, f.store.BookedRooms(f.roomType.ID, calendar.MustParse("2024-03-15")))
	})

	t.Run("増加も上書きとして保存", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-20", 25),
		})
		require.NoError(t, err)
		assert.Equal(t, 25, result.Results[0].AvailableRooms)

		o, ok := f.store.Override(f.roomType.ID, calendar.MustParse("2024-03-20"))
		require.True(t, ok)
		assert.Equal(t, 25, o.AvailableRooms())
	})

	t.Run("ゼロへの変更も可能", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-20", 0),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Results[0].AvailableRooms)
	})

	t.Run("日付は昇順でロックし結果も昇順", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-18", 4, "2024-03-16", 6, "2024-03-17", 5),
		})
		require.NoError(t, err)

		got := make([]string, 0, len(result.Results))
		for _, r := range result.Results {
			got = append(got, r.Date.String())
		}
		assert.Equal(t, []string{"2024-03-16", "2024-03-17", "2024-03-18"}, got)

		locks := f.store.LockCalls()
		require.Len(t, locks, 1)
		assert.Equal(t, "2024-03-16", locks[0][0].String())
		assert.Equal(t, "2024-03-18", locks[0][2].String())
	})
}

func TestUpdateAvailability_Conflict(t *testing.T) {
	ctx := context.Background()

	t.Run("強制なしの減少は何も書き込まず競合を返す", func(t *testing.T) {
		f := newFixture(t)
		a := f.seedBooking("2024-03-15", "2024-03-17", 2, 0)
		b := f.seedBooking("2024-03-15", "2024-03-16", 2, time.Minute)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-15", 1),
		})
		require.NoError(t, err)
		require.NotNil(t, result.Conflict)
		assert.Empty(t, result.Results)
		assert.Equal(t, "2024-03-15", result.Conflict.Date.String())
		assert.Equal(t, 1, result.Conflict.RequestedAvailability)
		assert.Equal(t, 4, result.Conflict.ExistingBookings)
		require.Len(t, result.Conflict.AffectedBookings, 2)
		assert.Equal(t, a.ID, result.Conflict.AffectedBookings[0].ID)
		assert.Equal(t, b.ID, result.Conflict.AffectedBookings[1].ID)

		_, ok := f.store.Override(f.roomType.ID, calendar.MustParse("2024-03-15"))
		assert.False(t, ok)
		stored, _ := f.store.Booking(a.ID)
		assert.Equal(t, booking.StatusConfirmed, stored.Status)
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("一日でも競合すれば他の日付も適用しない", func(t *testing.T) {
		f := newFixture(t)
		f.seedBooking("2024-03-16", "2024-03-17", 3, 0)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-15", 8, "2024-03-16", 1),
		})
		require.NoError(t, err)
		require.NotNil(t, result.Conflict)
		assert.Len(t, result.Conflicts, 1)
		assert.Equal(t, "2024-03-16", result.Conflict.Date.String())

		_, ok := f.store.Override(f.roomType.ID, calendar.MustParse("2024-03-15"))
		assert.False(t, ok)
	})

	t.Run("競合の対象はキャンセル候補のみ", func(t *testing.T) {
		f := newFixture(t)
		big := f.seedBooking("2024-03-15", "2024-03-16", 3, 0)
		f.seedBooking("2024-03-15", "2024-03-16", 1, time.Minute)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-15", 2),
		})
		require.NoError(t, err)
		require.NotNil(t, result.Conflict)
		require.Len(t, result.Conflict.AffectedBookings, 1)
		assert.Equal(t, big.ID, result.Conflict.AffectedBookings[0].ID)
	})
}

func TestUpdateAvailability_ForceCancellation(t *testing.T) {
	ctx := context.Background()

	t.Run("大きい予約から最少件数をキャンセル", func(t *testing.T) {
		f := newFixture(t)
		large := f.seedBooking("2024-03-15", "2024-03-16", 3, 0)
		medium := f.seedBooking("2024-03-15", "2024-03-16", 2, time.Minute)
		small := f.seedBooking("2024-03-15", "2024-03-16", 1, 2*time.Minute)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID:        f.roomType.ID,
			Updates:           updates("2024-03-15", 3),
			ForceCancellation: true,
		})
		require.NoError(t, err)
		require.Nil(t, result.Conflict)
		assert.Equal(t, 1, result.Results[0].CancelledBookings)

		got, _ := f.store.Booking(large.ID)
		assert.Equal(t, booking.StatusCancelled, got.Status)
		require.NotNil(t, got.CancelledBy)
		assert.Equal(t, booking.CancelledByAvailabilityReduction, *got.CancelledBy)

		for _, id := range []uuid.UUID{medium.ID, small.ID} {
			rest, _ := f.store.Booking(id)
			assert.Equal(t, booking.StatusConfirmed, rest.Status)
		}
		assert.LessOrEqual(t, f.store.BookedRooms(f.roomType.ID, calendar.MustParse("2024-03-15")), 3)
	})

	t.Run("同じ部屋数なら先に作成された予約から", func(t *testing.T) {
		f := newFixture(t)
		older := f.seedBooking("2024-03-15", "2024-03-16", 2, 0)
		newer := f.seedBooking("2024-03-15", "2024-03-16", 2, time.Hour)

		_, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID:        f.roomType.ID,
			Updates:           updates("2024-03-15", 2),
			ForceCancellation: true,
		})
		require.NoError(t, err)

		o, _ := f.store.Booking(older.ID)
		n, _ := f.store.Booking(newer.ID)
		assert.Equal(t, booking.StatusCancelled, o.Status)
		assert.Equal(t, booking.StatusConfirmed, n.Status)
	})

	t.Run("複数泊の予約は一度だけキャンセル", func(t *testing.T) {
		f := newFixture(t)
		stay := f.seedBooking("2024-03-15", "2024-03-18", 2, 0)
		f.seedBooking("2024-03-16", "2024-03-17", 1, time.Minute)

		result, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID:        f.roomType.ID,
			Updates:           updates("2024-03-15", 0, "2024-03-16", 1),
			ForceCancellation: true,
		})
		require.NoError(t, err)
		require.Len(t, result.Results, 2)
		assert.Equal(t, 1, result.Results[0].CancelledBookings)
		// the long stay freed 03-16 already; one room remains there
		assert.Equal(t, 0, result.Results[1].CancelledBookings)

		got, _ := f.store.Booking(stay.ID)
		assert.Equal(t, booking.StatusCancelled, got.Status)
		assert.Equal(t, 1, f.store.BookedRooms(f.roomType.ID, calendar.MustParse("2024-03-16")))

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationTopicBookingCancelled, jobs[0].Topic)

		var payload shared.BookingNotification
		require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
		assert.Equal(t, stay.ID, payload.BookingID)
		assert.Equal(t, "availability_reduction", payload.CancelledBy)
		assert.Equal(t, "guest@example.com", payload.GuestEmail)
	})

	t.Run("保存失敗時はキャンセルも巻き戻す", func(t *testing.T) {
		f := newFixture(t)
		b := f.seedBooking("2024-03-15", "2024-03-16", 4, 0)
		f.store.FailOn("Availability.UpsertOverride", errStorage)

		_, err := f.availabilityCommands().UpdateAvailability(ctx, f.owner, commands.UpdateAvailabilityInput{
			RoomTypeID:        f.roomType.ID,
			Updates:           updates("2024-03-15", 1),
			ForceCancellation: true,
		})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))

		got, _ := f.store.Booking(b.ID)
		assert.Equal(t, booking.StatusConfirmed, got.Status)
		assert.Nil(t, got.CancelledBy)
		assert.Empty(t, f.store.Jobs())
		assert.Equal(t, 1, f.store.Rollbacks())
	})
}

func TestUpdateAvailability_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    func(f *fixture) shared.Actor
		input    func(f *fixture) commands.UpdateAvailabilityInput
		expected error
	}{
		{
			name:  "他ホテルのオーナーは禁止",
			actor: func(f *fixture) shared.Actor { return shared.Actor{UserID: uuid.New(), Role: user.RoleOwner} },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: f.roomType.ID, Updates: updates("2024-03-15", 1)}
			},
			expected: commands.ErrForbidden,
		},
		{
			name:  "ゲストは禁止",
			actor: func(f *fixture) shared.Actor { return f.guest },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: f.roomType.ID, Updates: updates("2024-03-15", 1)}
			},
			expected: commands.ErrForbidden,
		},
		{
			name:  "存在しない部屋タイプ",
			actor: func(f *fixture) shared.Actor { return f.owner },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: uuid.New(), Updates: updates("2024-03-15", 1)}
			},
			expected: commands.ErrRoomTypeNotFound,
		},
		{
			name:  "負の在庫",
			actor: func(f *fixture) shared.Actor { return f.owner },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: f.roomType.ID, Updates: updates("2024-03-15", -1)}
			},
			expected: commands.ErrInvalidAvailabilityUpdate,
		},
		{
			name:  "日付の重複",
			actor: func(f *fixture) shared.Actor { return f.owner },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: f.roomType.ID, Updates: updates("2024-03-15", 1, "2024-03-15", 2)}
			},
			expected: commands.ErrInvalidAvailabilityUpdate,
		},
		{
			name:  "更新なし",
			actor: func(f *fixture) shared.Actor { return f.owner },
			input: func(f *fixture) commands.UpdateAvailabilityInput {
				return commands.UpdateAvailabilityInput{RoomTypeID: f.roomType.ID}
			},
			expected: commands.ErrInvalidAvailabilityUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			result, err := f.availabilityCommands().UpdateAvailability(ctx, tt.actor(f), tt.input(f))

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, tt.expected), "got %v", err)
		})
	}

	t.Run("管理者は任意のホテルを更新可能", func(t *testing.T) {
		f := newFixture(t)
		admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

		_, err := f.availabilityCommands().UpdateAvailability(ctx, admin, commands.UpdateAvailabilityInput{
			RoomTypeID: f.roomType.ID,
			Updates:    updates("2024-03-15", 4),
		})
		require.NoError(t, err)
	})
}
