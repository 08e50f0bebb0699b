//go:build unit || e2e

package builder

import (
	"hotel-fastbill/internal/domain/room"
	reqdto "hotel-fastbill/internal/handler/dto/request"
)

type RoomBuilder struct {
	ID   string
	Name string
	Type string
	Note string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:   "101",
		Name: "101",
		Type: room.DefaultType,
		Note: "",
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithID(id string) *RoomBuilder {
	r.ID = id
	r.Name = id
	return r
}

func (r *RoomBuilder) BuildDomain() room.Room {
	return room.Room{ID: r.ID, Name: r.Name, Type: r.Type, Note: r.Note}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{ID: r.ID, Type: r.Type}
}
