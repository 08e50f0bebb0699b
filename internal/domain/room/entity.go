package room

import (
	"errors"
	"strings"

	"hotel-fastbill/internal/pkg/patch"
)

var (
	ErrInvalidID   = errors.New("room id is required")
	ErrInvalidName = errors.New("room name cannot be empty")
)

const DefaultType = "single"

// Room is identified by the number printed on its door.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Note string `json:"note"`
}

func NewRoom(id, roomType string) (Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Room{}, ErrInvalidID
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		roomType = DefaultType
	}
	return Room{ID: id, Name: id, Type: roomType}, nil
}

// Placeholder stands in for a room that was deleted after bookings referenced it.
func Placeholder(id string) Room {
	return Room{ID: id, Name: id, Type: DefaultType}
}

type Patch struct {
	Name *string
	Type *string
	Note *string
}

func (r Room) Apply(p Patch) (Room, error) {
	if name := patch.TrimmedString(p.Name); name != nil {
		if *name == "" {
			return Room{}, ErrInvalidName
		}
		r.Name = *name
	}
	if t := patch.TrimmedString(p.Type); t != nil {
		r.Type = *t
		if r.Type == "" {
			r.Type = DefaultType
		}
	}
	if p.Note != nil {
		r.Note = *p.Note
	}
	return r, nil
}
