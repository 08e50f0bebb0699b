package repository

import (
	"log/slog"

	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/usecase/shared"
)

type roomRepository struct {
	*Collection[[]room.Room]
}

func NewRoomRepository(store kvstore.Store, logger *slog.Logger) shared.RoomRepository {
	return &roomRepository{
		Collection: NewCollection(store, KeyRooms, func() []room.Room { return []room.Room{} }, logger),
	}
}
