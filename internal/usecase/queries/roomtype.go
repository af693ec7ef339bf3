package queries

import (
	"context"

	"github.com/google/uuid"

	"hotel-availability/internal/infra"
	"hotel-availability/internal/pkg/errs"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

type RoomTypeQueries interface {
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	readStore RoomTypeReadStore
}

func NewRoomTypeQueries(readStore RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{
		readStore: readStore,
	}
}

func (q *roomTypeQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	return findRoomType(ctx, q.readStore, id)
}

func findRoomType(ctx context.Context, readStore RoomTypeReadStore, id uuid.UUID) (*RoomTypeView, error) {
	rt, err := readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomTypeNotFound)
		}
		return nil, err
	}
	return rt, nil
}
