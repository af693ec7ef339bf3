package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/infra"
	sqlc "hotel-availability/internal/infra/sqlc/generated"
	"hotel-availability/internal/pkg/pgconv"
	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"
)

type RoomTypeReadQueries interface {
	GetRoomTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomTypeByIDRow, error)
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeReadQueries
	db      sqlc.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeReadQueries, db sqlc.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room type", err)
	}

	return &queries.RoomTypeView{
		ID:                 row.ID,
		HotelID:            row.HotelID,
		HotelName:          row.HotelName,
		HotelOwnerID:       row.HotelOwnerID,
		Name:               row.Name,
		BaseAvailability:   int(row.BaseAvailability),
		PricePerNightCents: int64(row.PricePerNightCents),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *RoomTypeReadStore) FindHotelByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}

	return &shared.HotelSnapshot{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Name:    row.Name,
	}, nil
}
