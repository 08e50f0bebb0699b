package queries

import (
	"context"

	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/usecase/shared"
)

type RoomQueries interface {
	List(ctx context.Context) ([]room.Room, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]room.Room, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return st.Rooms, nil
}
