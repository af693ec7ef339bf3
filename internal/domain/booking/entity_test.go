//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Nil(t, actual.CancelledBy())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("price is nights x rooms x nightly rate", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithStay("2024-03-15", "2024-03-18").
			WithRooms(2).
			WithPricePerNightCents(12000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Equal(t, int64(72000), actual.TotalPrice().Cents())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero rooms",
				mutate: func(b *builder.BookingBuilder) { b.WithRooms(0) },
				errIs:  booking.ErrInvalidRoomCount,
			},
			{
				name:   "one room",
				mutate: func(b *builder.BookingBuilder) { b.WithRooms(1) },
			},
			{
				name:   "missing guest",
				mutate: func(b *builder.BookingBuilder) { b.GuestID = uuid.Nil },
				errIs:  booking.ErrInvalidGuest,
			},
			{
				name:   "check-in today",
				mutate: func(b *builder.BookingBuilder) { b.Now = b.CheckIn.Time().Add(20 * time.Hour) },
			},
			{
				name:   "check-in yesterday",
				mutate: func(b *builder.BookingBuilder) { b.Now = b.CheckIn.Time().Add(30 * time.Hour) },
				errIs:  booking.ErrCheckInInPast,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookingBuilder) { b.WithPricePerNightCents(-1) },
				errIs:  booking.ErrNegativeMoney,
			},
		})
	})
}

func TestNewStay(t *testing.T) {
	d := calendar.MustParse

	tests := []struct {
		name     string
		checkIn  calendar.Date
		checkOut calendar.Date
		errIs    error
	}{
		{name: "1泊OK", checkIn: d("2024-03-15"), checkOut: d("2024-03-16")},
		{name: "同日NG", checkIn: d("2024-03-15"), checkOut: d("2024-03-15"), errIs: booking.ErrInvalidStay},
		{name: "逆順NG", checkIn: d("2024-03-16"), checkOut: d("2024-03-15"), errIs: booking.ErrInvalidStay},
		{name: "上限泊数OK", checkIn: d("2024-03-01"), checkOut: d("2024-03-01").AddDays(booking.MaxStayNights)},
		{name: "上限超過NG", checkIn: d("2024-03-01"), checkOut: d("2024-03-01").AddDays(booking.MaxStayNights + 1), errIs: booking.ErrStayTooLong},
		{name: "ゼロ値NG", checkOut: d("2024-03-15"), errIs: booking.ErrInvalidStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewStay(tt.checkIn, tt.checkOut)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStayCovers(t *testing.T) {
	stay, err := booking.NewStay(calendar.MustParse("2024-03-15"), calendar.MustParse("2024-03-17"))
	require.NoError(t, err)

	assert.False(t, stay.Covers(calendar.MustParse("2024-03-14")))
	assert.True(t, stay.Covers(calendar.MustParse("2024-03-15")))
	assert.True(t, stay.Covers(calendar.MustParse("2024-03-16")))
	assert.False(t, stay.Covers(calendar.MustParse("2024-03-17")), "check-out day is not a night of the stay")
	assert.Len(t, stay.Dates(), 2)
}

func TestBookingTransitions(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	t.Run("pending -> confirmed -> completed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm(now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())

		afterCheckout := b.Stay().CheckOut().Time().Add(10 * time.Hour)
		require.NoError(t, b.Complete(afterCheckout))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("complete before check-out", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Confirm(now))

		lastNight := b.Stay().CheckOut().AddDays(-1).Time()
		assert.ErrorIs(t, b.Complete(lastNight), booking.ErrCompletedBeforeCheckout)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("complete from pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Complete(b.Stay().CheckOut().Time()), booking.ErrInvalidTransition)
	})

	t.Run("cancel records reason and releases rooms", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithRooms(3).BuildDomain()
		require.NoError(t, err)
		night := b.Stay().CheckIn()
		assert.Equal(t, 3, b.RoomsOn(night))

		require.NoError(t, b.Cancel(booking.CancelledByAvailabilityReduction, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledByAvailabilityReduction, *b.CancelledBy())
		assert.Equal(t, 0, b.RoomsOn(night))
	})

	t.Run("cancel twice", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel(booking.CancelledByGuest, now))

		assert.ErrorIs(t, b.Cancel(booking.CancelledByOwner, now), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.Confirm(now), booking.ErrInvalidTransition)
	})

	t.Run("cancel with unknown reason", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Cancel(booking.CancelReason("weather"), now), booking.ErrInvalidCancelReason)
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
