package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrForbidden               = errs.New("forbidden")
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// enqueueBookingNotification writes an outbox job in the caller's transaction.
func enqueueBookingNotification(ctx context.Context, tx shared.Tx, topic string, b shared.BookingSnapshot, status booking.Status, reason *booking.CancelReason, now time.Time) error {
	payload := shared.BookingNotification{
		BookingID:     b.ID,
		RoomTypeID:    b.RoomTypeID,
		GuestEmail:    b.GuestEmail,
		CheckInDate:   b.CheckIn.String(),
		CheckOutDate:  b.CheckOut.String(),
		NumberOfRooms: b.NumberOfRooms,
		Status:        status.String(),
	}
	if reason != nil {
		payload.CancelledBy = reason.String()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, topic, data, now)
}

func snapshotFromBooking(b *booking.Booking, guestEmail string, hotelOwnerID uuid.UUID) shared.BookingSnapshot {
	return shared.BookingSnapshot{
		ID:              b.ID(),
		RoomTypeID:      b.RoomTypeID(),
		HotelOwnerID:    hotelOwnerID,
		GuestID:         b.GuestID(),
		GuestEmail:      guestEmail,
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		NumberOfRooms:   b.NumberOfRooms(),
		Status:          b.Status(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CancelledBy:     b.CancelledBy(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
