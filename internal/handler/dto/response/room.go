package response

import "hotel-fastbill/internal/domain/room"

type RoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Note string `json:"note"`
}

// ResolvedRoomResponse.Known is false for the placeholder of a deleted room.
type ResolvedRoomResponse struct {
	RoomResponse
	Known bool `json:"known"`
}

func FromRoom(r room.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name, Type: r.Type, Note: r.Note}
}

func FromRooms(rooms []room.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = FromRoom(r)
	}
	return res
}
