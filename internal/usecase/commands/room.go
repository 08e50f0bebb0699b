package commands

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/usecase/shared"
)

type AddRoomRequest struct {
	ID   string
	Type string
}

type UpdateRoomRequest struct {
	Name *string
	Type *string
	Note *string
}

type RoomCommands interface {
	AddRoom(ctx context.Context, req AddRoomRequest) (room.Room, error)
	UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (room.Room, error)
	// DeleteRoom leaves bookings of the room in place; they resolve to a placeholder room.
	DeleteRoom(ctx context.Context, id string) error
}

type roomUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewRoomUseCase(uow shared.UnitOfWork, logger *slog.Logger) RoomCommands {
	return &roomUseCaseImpl{uow: uow, logger: logger}
}

func (uc *roomUseCaseImpl) AddRoom(ctx context.Context, req AddRoomRequest) (room.Room, error) {
	r, err := room.NewRoom(req.ID, req.Type)
	if err != nil {
		return room.Room{}, validationErr(err)
	}

	err = uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		st := tx.State()
		if st.Directory().Contains(r.ID) {
			return ErrRoomExists
		}
		tx.SetRooms(append([]room.Room{r}, st.Rooms...))
		return nil
	})
	if err != nil {
		return room.Room{}, err
	}

	uc.logger.Info("Room added", "room_id", r.ID, "type", r.Type)
	return r, nil
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (room.Room, error) {
	var updated room.Room
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		st := tx.State()
		for i, r := range st.Rooms {
			if r.ID != id {
				continue
			}
			next, derr := r.Apply(room.Patch{Name: req.Name, Type: req.Type, Note: req.Note})
			if derr != nil {
				return validationErr(derr)
			}
			st.Rooms[i] = next
			updated = next
			tx.SetRooms(st.Rooms)
			return nil
		}
		return ErrRoomNotFound
	})
	if err != nil {
		return room.Room{}, err
	}

	uc.logger.Info("Room updated", "room_id", id)
	return updated, nil
}

func (uc *roomUseCaseImpl) DeleteRoom(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		st := tx.State()
		kept := make([]room.Room, 0, len(st.Rooms))
		for _, r := range st.Rooms {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(st.Rooms) {
			return ErrRoomNotFound
		}
		tx.SetRooms(kept)
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Room deleted", "room_id", id)
	return nil
}
