package shared

import (
	"context"
	"time"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/roomtype"
	sqlc "hotel-availability/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	RoomTypes() RoomTypeRepository
	Availability() AvailabilityRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ActiveBookingsOn lists pending and confirmed bookings whose stay covers date.
	ActiveBookingsOn(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) ([]BookingSnapshot, error)
	BookedRooms(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) (int, error)
	// OverrideOn returns nil when the date follows base availability.
	OverrideOn(ctx context.Context, roomTypeID uuid.UUID, date calendar.Date) (*availability.Override, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error
}

type AvailabilityRepository interface {
	// LockDates serialises writers per (room type, date) until the transaction ends.
	LockDates(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, dates []calendar.Date) error
	UpsertOverride(ctx context.Context, tx sqlc.DBTX, o availability.Override) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus applies a transition only if the row is still in from.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, from, to booking.Status, cancelledBy *booking.CancelReason) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks up to limit queued jobs; concurrent claimers skip locked rows.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
