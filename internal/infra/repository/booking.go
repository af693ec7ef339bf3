package repository

import (
	"context"

	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/infra/repository/converter"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(
	ctx context.Context,
	tx sqlc.DBTX,
	id uuid.UUID,
	from, to booking.Status,
	cancelledBy *booking.CancelReason,
) error {
	params := sqlc.UpdateBookingStatusParams{
		Status:         to.String(),
		ID:             id,
		ExpectedStatus: from.String(),
		CancelledBy:    pgtype.Text{Valid: false},
	}
	if cancelledBy != nil {
		params.CancelledBy = pgconv.StringToPgtype(cancelledBy.String())
	}

	n, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
