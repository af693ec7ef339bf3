package repository

import (
	"context"

	"hotel-availability/internal/domain/roomtype"
	"hotel-availability/internal/infra"
	"hotel-availability/internal/infra/repository/converter"
	sqlc "hotel-availability/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomTypeWriteQueries interface {
	CreateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomTypeParams) (uuid.UUID, error)
	UpdateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomTypeParams) (int64, error)
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries) *RoomTypeRepository {
	return &RoomTypeRepository{
		queries: queries,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) (uuid.UUID, error) {
	id, err := r.queries.CreateRoomType(ctx, tx, converter.RoomTypeToInfra(rt))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error {
	n, err := r.queries.UpdateRoomType(ctx, tx, converter.RoomTypeUpdateToInfra(rt))
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}
